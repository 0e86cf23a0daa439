package storage

import (
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"photo.jpg", "photo.jpg"},
		{"foto pernikahan.jpg", "foto_pernikahan.jpg"},
		{"../../etc/passwd", ".._.._etc_passwd"},
		{"emoji💍ring.png", "emoji_ring.png"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.expected {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestUniqueFilenameDiffers(t *testing.T) {
	a := UniqueFilename("photo.jpg")
	b := UniqueFilename("photo.jpg")
	if a == b {
		t.Errorf("two uploads of the same name must get distinct filenames, got %q twice", a)
	}
	if !strings.HasSuffix(a, "photo.jpg") {
		t.Errorf("unique filename should keep the sanitized original suffix, got %q", a)
	}
}

func TestThumbnailName(t *testing.T) {
	if got := ThumbnailName("abc.png"); got != "abc_thumb.jpg" {
		t.Errorf("ThumbnailName = %q", got)
	}
	if got := ThumbnailName("noext"); got != "noext_thumb.jpg" {
		t.Errorf("ThumbnailName = %q", got)
	}
}
