package models

import "time"

// VerificationCode is a single-use token mailed to the user. Its ID is the
// value the user presents back. At most one code per user is valid.
type VerificationCode struct {
	ID        string
	UserID    string
	Valid     bool
	CreatedAt time.Time
}
