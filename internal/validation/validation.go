// Package validation normalizes and checks user supplied fields before they
// reach the services. All failures wrap common.ErrValidation.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/finances/internal/common"
)

var emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

var usernameRegex = regexp.MustCompile(`^[a-z0-9_.\-]{3,32}$`)

// FieldError describes a single rejected field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap lets callers match any FieldError with errors.Is(err, common.ErrValidation).
func (e FieldError) Unwrap() error {
	return common.ErrValidation
}

// NormalizeEmail trims and lower-cases an email address. Uniqueness checks
// and lookups always use the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail expects an already normalized address.
func ValidateEmail(email string) error {
	if email == "" {
		return FieldError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return FieldError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

func ValidatePassword(password string) error {
	if password == "" {
		return FieldError{Field: "password", Message: "password is required"}
	}
	if len(password) < common.MinPasswordLength {
		return FieldError{Field: "password", Message: fmt.Sprintf("password must be at least %d characters", common.MinPasswordLength)}
	}
	return nil
}

// ValidateName checks a first or last name; field is used in the message.
func ValidateName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return FieldError{Field: field, Message: field + " is required"}
	}
	return nil
}

func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return FieldError{Field: "username", Message: "username must be 3-32 characters of a-z, 0-9, '.', '_' or '-'"}
	}
	return nil
}

func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return FieldError{Field: "description", Message: "description is required"}
	}
	return nil
}
