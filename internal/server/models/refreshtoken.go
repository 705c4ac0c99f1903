package models

import "time"

// RefreshToken is an opaque, single-use session token. It is rotated on
// every refresh and rejected once ExpiresAt has passed.
type RefreshToken struct {
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the token is no longer usable at now.
func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
