// Package releases persists income and expense records.
package releases

import (
	"context"

	"github.com/dmitrijs2005/finances/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, r *models.Release) (*models.Release, error)
	// ListByUser returns all of the user's releases by due date, then
	// creation time.
	ListByUser(ctx context.Context, userID string) ([]*models.Release, error)
}
