package slug

import (
	"testing"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name     string
		groom    string
		bride    string
		expected string
	}{
		{
			name:     "simple names",
			groom:    "Budi",
			bride:    "Sari",
			expected: "budi-sari",
		},
		{
			name:     "names with spaces",
			groom:    "Budi Santoso",
			bride:    "Sari Dewi",
			expected: "budisantoso-saridewi",
		},
		{
			name:     "mixed case",
			groom:    "BUDI",
			bride:    "sari",
			expected: "budi-sari",
		},
		{
			name:     "punctuation stripped",
			groom:    "Budi, S.Kom",
			bride:    "Sari!",
			expected: "budiskom-sari",
		},
		{
			name:     "empty groom",
			groom:    "",
			bride:    "Sari",
			expected: "sari",
		},
		{
			name:     "empty bride",
			groom:    "Budi",
			bride:    "",
			expected: "budi",
		},
		{
			name:     "both empty",
			groom:    "",
			bride:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Derive(tt.groom, tt.bride); got != tt.expected {
				t.Errorf("Derive(%q, %q) = %q, want %q", tt.groom, tt.bride, got, tt.expected)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Budi & Sari 2026", "budisari2026"},
		{"  spaced  out  ", "spacedout"},
		{"already-sluggy", "already-sluggy"},
		{"--leading-and-trailing--", "leading-and-trailing"},
		{"dash--run---inside", "dash-run-inside"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.expected {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
