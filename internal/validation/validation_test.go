package validation

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/finances/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.Com "))
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid email", email: "test@example.com"},
		{name: "valid email with subdomain", email: "user@mail.example.com"},
		{name: "valid email with plus", email: "user+tag@example.com"},
		{name: "empty", email: "", wantErr: true},
		{name: "missing @", email: "testexample.com", wantErr: true},
		{name: "missing domain", email: "test@", wantErr: true},
		{name: "missing local part", email: "@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, common.ErrValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long-enough"))
}

func TestValidateName(t *testing.T) {
	err := ValidateName("first name", "   ")
	assert.EqualError(t, err, "first name: first name is required")
	assert.NoError(t, ValidateName("first name", "Ana"))
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("ana.silva_01"))
	assert.Error(t, ValidateUsername("ab"))
	assert.Error(t, ValidateUsername("Ana Silva"))
}

func TestValidateDescription(t *testing.T) {
	assert.Error(t, ValidateDescription(" "))
	assert.NoError(t, ValidateDescription("groceries"))
}
