package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"Valid", "Ada Lovelace", false},
		{"Exactly Max Length", strings.Repeat("a", 100), false},
		{"Empty", "", true},
		{"Whitespace Only", "   ", true},
		{"Too Long", strings.Repeat("a", 101), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"Valid", "ada@example.com", false},
		{"Valid Subdomain", "ada@mail.example.co.uk", false},
		{"Exactly Max Length", strings.Repeat("a", 88) + "@example.com", false},
		{"Empty", "", true},
		{"No At Sign", "ada.example.com", true},
		{"No Domain Dot", "ada@example", true},
		{"Contains Space", "ada lovelace@example.com", true},
		{"Too Long", strings.Repeat("a", 89) + "@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid", "hunter22", false},
		{"Exactly Min Length", "abcdef", false},
		{"Exactly Max Length", strings.Repeat("a", 255), false},
		{"Empty", "", true},
		{"Too Short", "abcde", true},
		{"Too Long", strings.Repeat("a", 256), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUserInput_CollectsAllFailures(t *testing.T) {
	t.Parallel()

	err := ValidateUserInput("", "not-an-email", "abc")
	assert.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "name is required")
	assert.Contains(t, msg, "email must be a valid email address")
	assert.Contains(t, msg, "password must be at least 6 characters long")
}

func TestValidateUserInput_Valid(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateUserInput("Ada Lovelace", "ada@example.com", "hunter22"))
}
