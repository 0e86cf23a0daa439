package utils

import (
	"testing"
)

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		shouldError bool
	}{
		{
			name:        "Indonesian mobile with country code",
			input:       "+628123456789",
			expected:    "+628123456789",
			shouldError: false,
		},
		{
			name:        "Indonesian mobile without country code",
			input:       "08123456789",
			expected:    "+628123456789",
			shouldError: false,
		},
		{
			name:        "Indonesian mobile with spaces",
			input:       "0812 3456 789",
			expected:    "+628123456789",
			shouldError: false,
		},
		{
			name:        "Indonesian mobile with dashes",
			input:       "0812-3456-789",
			expected:    "+628123456789",
			shouldError: false,
		},
		{
			name:        "Indonesian mobile with leading/trailing spaces",
			input:       "  08123456789  ",
			expected:    "+628123456789",
			shouldError: false,
		},
		{
			name:        "Indonesian landline Jakarta",
			input:       "0215550123",
			expected:    "+62215550123",
			shouldError: false,
		},
		{
			name:        "International format with country code",
			input:       "+62 812 3456 789",
			expected:    "+628123456789",
			shouldError: false,
		},
		{
			name:        "Singaporean mobile with country code",
			input:       "+6581234567",
			expected:    "+6581234567",
			shouldError: false,
		},
		{
			name:        "Invalid phone number - too short",
			input:       "123",
			expected:    "",
			shouldError: true,
		},
		{
			name:        "Invalid phone number - letters",
			input:       "abcdefghij",
			expected:    "",
			shouldError: true,
		},
		{
			name:        "Empty string",
			input:       "",
			expected:    "",
			shouldError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NormalizePhoneNumber(tt.input)

			if tt.shouldError {
				if err == nil {
					t.Errorf("Expected error for input %q, but got none", tt.input)
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error for input %q: %v", tt.input, err)
				}
				if result != tt.expected {
					t.Errorf("For input %q, expected %q but got %q", tt.input, tt.expected, result)
				}
			}
		})
	}
}
