// Package usercontacts persists the per-user contact identity.
package usercontacts

import (
	"context"

	"github.com/dmitrijs2005/finances/internal/server/models"
)

type Repository interface {
	FindByUserID(ctx context.Context, userID string) (*models.UserContact, error)
	Create(ctx context.Context, uc *models.UserContact) (*models.UserContact, error)
	// UpdateProfile stores Username and AvatarKey of the identity owned by
	// uc.UserID.
	UpdateProfile(ctx context.Context, uc *models.UserContact) error
}
