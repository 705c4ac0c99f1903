// Package services contains server-side business logic: the account
// lifecycle, verification codes, the contact graph and invite workflow,
// authentication, categories, releases and avatar storage.
//
// Services depend on repositories through repomanager.RepositoryManager and
// run every multi-step write inside dbx.WithTx.
package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/finances/internal/server/models"
)

// Hasher turns plaintext passwords into storable hashes.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Compare(hash, plaintext string) bool
}

// Notifier delivers verification codes to users. Implementations live in
// the notify package.
type Notifier interface {
	SendActivation(ctx context.Context, user *models.User, code string) error
	SendRecovery(ctx context.Context, user *models.User, code string) error
}

type clock func() time.Time

func (c clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c()
}
