package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/finances/internal/common"
	"github.com/dmitrijs2005/finances/internal/dbx"
	"github.com/dmitrijs2005/finances/internal/server/models"
	"github.com/dmitrijs2005/finances/internal/server/repositories/repomanager"
)

const validCodeConstraint = "verification_codes_one_valid_per_user"

// CodeManager keeps at most one valid verification code per user.
type CodeManager struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCodeManager(db *sql.DB, m repomanager.RepositoryManager) *CodeManager {
	return &CodeManager{db: db, repomanager: m}
}

// Issue invalidates the user's current valid code, if any, and stores a new
// one. It must run inside the caller's transaction: the current code row is
// locked until the transaction ends. When a concurrent transaction inserted a
// valid code first, ErrCodeAlreadyIssued is returned.
func (m *CodeManager) Issue(ctx context.Context, tx dbx.DBTX, userID string) (string, error) {
	repo := m.repomanager.Codes(tx)

	current, err := repo.FindValidByUserID(ctx, userID)
	switch {
	case err == nil:
		if err := m.Invalidate(ctx, tx, current); err != nil {
			return "", err
		}
	case errors.Is(err, common.ErrorNotFound):
	default:
		return "", fmt.Errorf("error searching valid code: %w", err)
	}

	code, err := repo.Create(ctx, &models.VerificationCode{UserID: userID, Valid: true})
	if err != nil {
		if dbx.IsUniqueViolation(err, validCodeConstraint) {
			return "", common.ErrCodeAlreadyIssued
		}
		return "", fmt.Errorf("error creating code: %w", err)
	}

	return code.ID, nil
}

// Invalidate flips the code's valid flag. Already invalid codes are left
// untouched and nil is returned.
func (m *CodeManager) Invalidate(ctx context.Context, tx dbx.DBTX, code *models.VerificationCode) error {
	if !code.Valid {
		return nil
	}

	code.Valid = false
	if err := m.repomanager.Codes(tx).Update(ctx, code); err != nil {
		code.Valid = true
		return fmt.Errorf("error invalidating code: %w", err)
	}

	return nil
}

// IssueCode runs Issue in its own transaction.
func (m *CodeManager) IssueCode(ctx context.Context, userID string) (string, error) {
	var id string
	err := dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		id, err = m.Issue(ctx, tx, userID)
		return err
	})
	if err != nil {
		return "", err
	}
	return id, nil
}
