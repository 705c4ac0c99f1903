// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is a registered account. Email is stored normalized (trimmed,
// lower-cased). PasswordHash never holds the plaintext.
type User struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
}

// UserDraft carries registration input before it is validated and hashed.
type UserDraft struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// CredentialSubject is the authentication-facing view of a user.
type CredentialSubject struct {
	UserID       string
	Email        string
	PasswordHash string
	Active       bool
}
