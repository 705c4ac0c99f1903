// Package refreshtokens declares the server-side repository contract for
// managing refresh tokens in persistent storage.
package refreshtokens

import (
	"context"

	"github.com/dmitrijs2005/finances/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and revoking refresh tokens.
type Repository interface {
	// Create stores token. Expires must be set by the caller.
	Create(ctx context.Context, token *models.RefreshToken) error

	// FindForUpdate looks up a refresh token by its opaque string and locks it,
	// so that concurrent rotations of the same token serialize.
	// Returns common.ErrorNotFound when the token is absent.
	FindForUpdate(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete removes a refresh token by its token string. Deleting a non-existent
	// token is not an error.
	Delete(ctx context.Context, token string) error
}
