package releases

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/finances/internal/server/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	due := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	value := decimal.RequireFromString("12.50")

	q := `(?s)^INSERT\s+INTO\s+releases\s*\(user_id,\s*category_id,\s*value,\s*description,\s*status,\s*type,\s*due_date\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6,\s*\$7\)\s*RETURNING\s+id,\s*created_at$`
	mock.ExpectQuery(q).
		WithArgs("u-1", "cat-1", value, "rent", "PENDING", "EXPENSE", due).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("rel-1", time.Now()))

	got, err := repo.Create(context.Background(), &models.Release{
		UserID:      "u-1",
		CategoryID:  "cat-1",
		Value:       value,
		Description: "rent",
		Status:      models.ReleaseStatusPending,
		Type:        models.ReleaseTypeExpense,
		DueDate:     due,
	})
	require.NoError(t, err)
	assert.Equal(t, "rel-1", got.ID)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+releases\b`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Release{UserID: "u-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: db down")
}

func TestListByUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+releases\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+due_date\s+ASC,\s*created_at\s+ASC$`

	due := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "user_id", "category_id", "value", "description", "status", "type", "due_date", "created_at"}).
		AddRow("rel-1", "u-1", "cat-1", "1500.00", "salary", "PAID", "INCOME", due, due)
	mock.ExpectQuery(q).WithArgs("u-1").WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Value.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, models.ReleaseTypeIncome, got[0].Type)
	assert.Equal(t, models.ReleaseStatusPaid, got[0].Status)
}

func TestListByUser_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,.*FROM\s+releases\b`).WillReturnError(errors.New("db err"))

	_, err := repo.ListByUser(context.Background(), "u-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to select releases")
}
