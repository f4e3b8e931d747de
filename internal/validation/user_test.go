package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errMsg  string
		wantErr bool
	}{
		{
			name:    "valid name",
			input:   "Ada Lovelace",
			wantErr: false,
		},
		{
			name:    "valid name - min length",
			input:   "Al",
			wantErr: false,
		},
		{
			name:    "valid name - max length",
			input:   strings.Repeat("a", 64),
			wantErr: false,
		},
		{
			name:    "invalid - empty",
			input:   "",
			wantErr: true,
			errMsg:  "name cannot be empty",
		},
		{
			name:    "invalid - whitespace only",
			input:   "   ",
			wantErr: true,
			errMsg:  "name cannot be empty",
		},
		{
			name:    "invalid - too short",
			input:   "A",
			wantErr: true,
			errMsg:  "at least 2 characters",
		},
		{
			name:    "invalid - too long",
			input:   strings.Repeat("a", 65),
			wantErr: true,
			errMsg:  "must not exceed 64 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "valid email",
			input:   "ada@example.com",
			wantErr: false,
		},
		{
			name:    "valid email - subdomain",
			input:   "ada@mail.example.co.uk",
			wantErr: false,
		},
		{
			name:    "valid email - plus tag",
			input:   "ada+drafts@example.com",
			wantErr: false,
		},
		{
			name:    "invalid - empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "invalid - no at sign",
			input:   "ada.example.com",
			wantErr: true,
		},
		{
			name:    "invalid - no domain dot",
			input:   "ada@localhost",
			wantErr: true,
		},
		{
			name:    "invalid - contains space",
			input:   "ada lovelace@example.com",
			wantErr: true,
		},
		{
			name:    "invalid - double at",
			input:   "ada@@example.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errMsg  string
		wantErr bool
	}{
		{
			name:    "valid password",
			input:   "secret123",
			wantErr: false,
		},
		{
			name:    "valid password - min length",
			input:   "12345678",
			wantErr: false,
		},
		{
			name:    "invalid - empty",
			input:   "",
			wantErr: true,
			errMsg:  "password cannot be empty",
		},
		{
			name:    "invalid - too short",
			input:   "1234567",
			wantErr: true,
			errMsg:  "at least 8 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
