package categories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/finances/internal/common"
	"github.com/dmitrijs2005/finances/internal/dbx"
	"github.com/dmitrijs2005/finances/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Category) (*models.Category, error) {

	query :=
		`INSERT INTO categories (user_id, description)
         VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	if err := r.db.QueryRowContext(ctx, query, c.UserID, c.Description).Scan(&c.ID, &c.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresRepository) FindForUser(ctx context.Context, id, userID string) (*models.Category, error) {
	query :=
		`SELECT id, user_id, description, created_at FROM categories
		 WHERE id = $1 AND user_id = $2
		 `

	c := &models.Category{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&c.ID, &c.UserID, &c.Description, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

// escapeLike makes filter safe to embed in an ILIKE pattern.
func escapeLike(filter string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(filter)
}

func (r *PostgresRepository) List(ctx context.Context, userID, filter string) ([]*models.Category, error) {
	query :=
		`SELECT id, user_id, description, created_at FROM categories
		 WHERE user_id = $1 AND description ILIKE '%' || $2 || '%'
		 ORDER BY description ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, escapeLike(filter))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Category
	for rows.Next() {
		c := &models.Category{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, c *models.Category) error {

	query := `UPDATE categories SET description = $1 WHERE id = $2 AND user_id = $3`

	res, err := r.db.ExecContext(ctx, query, c.Description, c.ID, c.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
