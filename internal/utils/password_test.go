package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		expected []string
	}{
		{
			name:     "valid password",
			password: "StrongPass1!",
			expected: nil,
		},
		{
			name:     "too short",
			password: "Ab1!",
			expected: []string{"Password must be at least 8 characters long."},
		},
		{
			name:     "no uppercase",
			password: "weakpass1!",
			expected: []string{"Password must contain at least one uppercase letter."},
		},
		{
			name:     "no number",
			password: "WeakPassword!",
			expected: []string{"Password must contain at least one number."},
		},
		{
			name:     "no special character",
			password: "WeakPassword1",
			expected: []string{"Password must contain at least one special character."},
		},
		{
			name:     "every rule violated",
			password: "abc",
			expected: []string{
				"Password must be at least 8 characters long.",
				"Password must contain at least one uppercase letter.",
				"Password must contain at least one number.",
				"Password must contain at least one special character.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidatePassword(tt.password))
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("StrongPass1!")
	assert.NoError(t, err)
	assert.NotEqual(t, "StrongPass1!", hash)

	assert.True(t, CheckPasswordHash("StrongPass1!", hash))
	assert.False(t, CheckPasswordHash("WrongPass1!", hash))
}
