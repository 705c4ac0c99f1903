// Package categories persists user-defined release categories.
package categories

import (
	"context"

	"github.com/dmitrijs2005/finances/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Category) (*models.Category, error)
	// FindForUser returns the category only if userID owns it.
	FindForUser(ctx context.Context, id, userID string) (*models.Category, error)
	// List returns the user's categories whose description contains filter,
	// case-insensitively. An empty filter matches everything.
	List(ctx context.Context, userID, filter string) ([]*models.Category, error)
	Update(ctx context.Context, c *models.Category) error
}
