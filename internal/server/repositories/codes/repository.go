// Package codes declares the verification code store.
package codes

import (
	"context"

	"github.com/dmitrijs2005/finances/internal/server/models"
)

// Repository persists verification codes. Codes are never deleted.
type Repository interface {
	// FindValidByUserID returns the user's current valid code and locks its
	// row for the rest of the transaction.
	FindValidByUserID(ctx context.Context, userID string) (*models.VerificationCode, error)
	// FindByID returns a code regardless of its valid flag.
	FindByID(ctx context.Context, id string) (*models.VerificationCode, error)
	Create(ctx context.Context, code *models.VerificationCode) (*models.VerificationCode, error)
	Update(ctx context.Context, code *models.VerificationCode) error
}
