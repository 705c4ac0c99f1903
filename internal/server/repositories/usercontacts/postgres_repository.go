package usercontacts

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

func (r *PostgresRepository) FindByUserID(ctx context.Context, userID string) (*models.UserContact, error) {
	query :=
		`SELECT id, user_id, username, avatar_key, created_at FROM user_contacts
		 WHERE user_id = $1
		 `

	uc := &models.UserContact{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&uc.ID, &uc.UserID, &uc.Username, &uc.AvatarKey, &uc.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return uc, nil
}

func (r *PostgresRepository) Create(ctx context.Context, uc *models.UserContact) (*models.UserContact, error) {

	query :=
		`INSERT INTO user_contacts (user_id, username, avatar_key)
         VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, uc.UserID, uc.Username, uc.AvatarKey).Scan(&uc.ID, &uc.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return uc, nil
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, uc *models.UserContact) error {

	query := `UPDATE user_contacts SET username = $1, avatar_key = $2 WHERE user_id = $3`

	res, err := r.db.ExecContext(ctx, query, uc.Username, uc.AvatarKey, uc.UserID)
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
