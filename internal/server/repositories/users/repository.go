// Package users declares the user directory contract.
package users

import (
	"context"

	"github.com/dmitrijs2005/finances/internal/server/models"
)

// Repository looks users up and persists them. Lookups return
// common.ErrorNotFound when no row matches. Emails are expected to be
// normalized by the caller.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindActiveByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindActiveByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}
