// Package common defines shared constants and sentinel errors used across
// client and server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrValidation     = errors.New("validation error")

	// Account lifecycle errors.
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrInvalidCode     = errors.New("invalid verification code")
	ErrSubjectNotFound = errors.New("user not found")
	ErrAccountInactive = errors.New("account is not active")
	ErrUserNotFound    = errors.New("user not found or inactive")

	// ErrCodeAlreadyIssued means a concurrent request stored the user's valid
	// code first. The surrounding transaction is aborted.
	ErrCodeAlreadyIssued = errors.New("verification code already issued")

	// Contact graph and invite errors.
	ErrSelfInviteNotAllowed    = errors.New("user can't invite himself")
	ErrRequesterNotFound       = errors.New("invite requester not found")
	ErrContactIdentityNotFound = errors.New("contact not found")
	ErrInviteNotFound          = errors.New("invite not found")
	ErrInviteAlreadyPending    = errors.New("invite already pending")
	ErrInviteAlreadyResolved   = errors.New("invite already resolved")
	ErrUsernameTaken           = errors.New("username already taken")

	// Cash flow errors.
	ErrCategoryNotFound = errors.New("category not found")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
