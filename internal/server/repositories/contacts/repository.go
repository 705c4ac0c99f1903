// Package contacts persists invite edges between contact identities.
package contacts

import (
	"context"

	"github.com/dmitrijs2005/finances/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Contact) (*models.Contact, error)
	// Update stores Status and ResolvedAt.
	Update(ctx context.Context, c *models.Contact) error
	// FindForReceiver returns the invite only when it is addressed to
	// receiverID, locking the row for the rest of the transaction.
	FindForReceiver(ctx context.Context, inviteID, receiverID string) (*models.Contact, error)
	// ListByReceiver returns every invite addressed to receiverID, oldest first.
	ListByReceiver(ctx context.Context, receiverID string) ([]*models.Contact, error)
	// ListAccepted returns accepted invites where contactID is either side.
	ListAccepted(ctx context.Context, contactID string) ([]*models.Contact, error)
}
