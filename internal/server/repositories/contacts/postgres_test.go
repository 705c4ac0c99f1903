package contacts

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/finances/internal/common"
	"github.com/dmitrijs2005/finances/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contactColumns = []string{"id", "requester_id", "receiver_id", "status", "created_at", "resolved_at"}

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

	q := `(?s)^INSERT\s+INTO\s+contacts\s*\(requester_id,\s*receiver_id,\s*status\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*created_at\s*$`

	mock.ExpectQuery(q).
		WithArgs("uc-a", "uc-b", "PENDING").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("inv-1", time.Now()))

	got, err := repo.Create(context.Background(), &models.Contact{RequesterID: "uc-a", ReceiverID: "uc-b", Status: models.InviteStatusPending})
	require.NoError(t, err)
	assert.Equal(t, "inv-1", got.ID)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+contacts\b`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Contact{RequesterID: "uc-a", ReceiverID: "uc-b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: db down")
}

func TestUpdate(t *testing.T) {
	q := `(?s)^UPDATE\s+contacts\s+SET\s+status\s*=\s*\$1,\s*resolved_at\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$3$`
	resolved := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("resolved", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(q).
			WithArgs("ACCEPTED", resolved, "inv-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), &models.Contact{ID: "inv-1", Status: models.InviteStatusAccepted, ResolvedAt: &resolved})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(q).
			WithArgs("REFUSED", nil, "inv-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), &models.Contact{ID: "inv-1", Status: models.InviteStatusRefused})
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})
}

func TestFindForReceiver(t *testing.T) {
	q := `(?s)^SELECT\s+id,.*FROM\s+contacts\s+WHERE\s+id\s*=\s*\$1\s+AND\s+receiver_id\s*=\s*\$2\s+FOR\s+UPDATE$`

	t.Run("found", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		rows := sqlmock.NewRows(contactColumns).AddRow("inv-1", "uc-a", "uc-b", "PENDING", time.Now(), nil)
		mock.ExpectQuery(q).WithArgs("inv-1", "uc-b").WillReturnRows(rows)

		got, err := repo.FindForReceiver(context.Background(), "inv-1", "uc-b")
		require.NoError(t, err)
		assert.Equal(t, models.InviteStatusPending, got.Status)
		assert.Nil(t, got.ResolvedAt)
	})

	t.Run("addressed to someone else", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectQuery(q).WithArgs("inv-1", "uc-c").WillReturnError(sql.ErrNoRows)

		_, err := repo.FindForReceiver(context.Background(), "inv-1", "uc-c")
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectQuery(q).WithArgs("inv-1", "uc-b").WillReturnError(errors.New("db err"))

		_, err := repo.FindForReceiver(context.Background(), "inv-1", "uc-b")
		require.Error(t, err)
		assert.NotErrorIs(t, err, common.ErrorNotFound)
	})
}

func TestListByReceiver(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+contacts\s+WHERE\s+receiver_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+ASC,\s*id\s+ASC$`

	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	rows := sqlmock.NewRows(contactColumns).
		AddRow("inv-1", "uc-a", "uc-b", "ACCEPTED", t1, t2).
		AddRow("inv-2", "uc-c", "uc-b", "PENDING", t2, nil)
	mock.ExpectQuery(q).WithArgs("uc-b").WillReturnRows(rows)

	got, err := repo.ListByReceiver(context.Background(), "uc-b")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "inv-1", got[0].ID)
	require.NotNil(t, got[0].ResolvedAt)
	assert.True(t, got[0].ResolvedAt.Equal(t2))
	assert.Equal(t, models.InviteStatusPending, got[1].Status)
}

func TestListAccepted(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+contacts\s+WHERE\s+status\s*=\s*'ACCEPTED'\s+AND\s+\(requester_id\s*=\s*\$1\s+OR\s+receiver_id\s*=\s*\$1\)`

	rows := sqlmock.NewRows(contactColumns).
		AddRow("inv-1", "uc-a", "uc-b", "ACCEPTED", time.Now(), time.Now())
	mock.ExpectQuery(q).WithArgs("uc-a").WillReturnRows(rows)

	got, err := repo.ListAccepted(context.Background(), "uc-a")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestList_QueryAndRowErrors(t *testing.T) {
	t.Run("query error", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectQuery(`(?s)^SELECT\s+id,.*FROM\s+contacts\b`).WillReturnError(errors.New("db err"))

		_, err := repo.ListByReceiver(context.Background(), "uc-b")
		require.Error(t, err)
	})

	t.Run("row error", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		rows := sqlmock.NewRows(contactColumns).
			AddRow("inv-1", "uc-a", "uc-b", "PENDING", time.Now(), nil).
			RowError(0, errors.New("row broke"))
		mock.ExpectQuery(`(?s)^SELECT\s+id,.*FROM\s+contacts\b`).WillReturnRows(rows)

		_, err := repo.ListByReceiver(context.Background(), "uc-b")
		require.Error(t, err)
	})
}
