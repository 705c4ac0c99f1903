package releases

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/finances/internal/dbx"
	"github.com/dmitrijs2005/finances/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rel *models.Release) (*models.Release, error) {

	query :=
		`INSERT INTO releases (user_id, category_id, value, description, status, type, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		rel.UserID, rel.CategoryID, rel.Value, rel.Description, string(rel.Status), string(rel.Type), rel.DueDate,
	).Scan(&rel.ID, &rel.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rel, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Release, error) {
	query := ` SELECT id, user_id, category_id, value, description, status, type, due_date, created_at FROM releases
		WHERE user_id = $1
		ORDER BY due_date ASC, created_at ASC
		`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select releases: %w", err)
	}
	defer rows.Close()

	var result []*models.Release
	for rows.Next() {
		item := &models.Release{}
		var status, typ string
		err := rows.Scan(&item.ID, &item.UserID, &item.CategoryID, &item.Value, &item.Description,
			&status, &typ, &item.DueDate, &item.CreatedAt)
		if err != nil {
			return nil, err
		}
		item.Status = models.ReleaseStatus(status)
		item.Type = models.ReleaseType(typ)
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
