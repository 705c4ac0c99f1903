package codes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

func (r *PostgresRepository) FindValidByUserID(ctx context.Context, userID string) (*models.VerificationCode, error) {
	query :=
		`SELECT id, user_id, is_valid, created_at FROM verification_codes
		 WHERE user_id = $1 AND is_valid
		 FOR UPDATE
		 `
	return r.findOne(ctx, query, userID)
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.VerificationCode, error) {
	query :=
		`SELECT id, user_id, is_valid, created_at FROM verification_codes
		 WHERE id = $1
		 `
	return r.findOne(ctx, query, id)
}

func (r *PostgresRepository) Create(ctx context.Context, code *models.VerificationCode) (*models.VerificationCode, error) {

	query :=
		`INSERT INTO verification_codes (user_id, is_valid)
         VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, code.UserID, code.Valid).Scan(&code.ID, &code.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return code, nil
}

func (r *PostgresRepository) Update(ctx context.Context, code *models.VerificationCode) error {

	query := `UPDATE verification_codes SET is_valid = $1 WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, code.Valid, code.ID)
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

func (r *PostgresRepository) findOne(ctx context.Context, query string, arg string) (*models.VerificationCode, error) {
	code := &models.VerificationCode{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&code.ID, &code.UserID, &code.Valid, &code.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return code, nil
}
