package models

import "time"

// Category groups releases of a single user.
type Category struct {
	ID          string
	UserID      string
	Description string
	CreatedAt   time.Time
}
