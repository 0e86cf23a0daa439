package database

import (
	"testing"
	"time"
)

func TestGalleryRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		urls []string
	}{
		{"empty", []string{}},
		{"single", []string{"https://cdn.example.com/a.jpg"}},
		{"ordered", []string{"https://cdn.example.com/b.jpg", "https://cdn.example.com/a.jpg", "/uploads/c.jpg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded := decodeGallery(encodeGallery(tt.urls))
			if decoded == nil {
				t.Fatal("decoded gallery must never be nil")
			}
			if len(decoded) != len(tt.urls) {
				t.Fatalf("got %d urls, want %d", len(decoded), len(tt.urls))
			}
			for i := range tt.urls {
				if decoded[i] != tt.urls[i] {
					t.Errorf("url %d = %q, want %q", i, decoded[i], tt.urls[i])
				}
			}
		})
	}
}

func TestDecodeGalleryEmptyIsEmptySlice(t *testing.T) {
	got := decodeGallery("")
	if got == nil || len(got) != 0 {
		t.Errorf("decodeGallery(\"\") = %#v, want empty non-nil slice", got)
	}
}

func TestNullString(t *testing.T) {
	if v := NullString("  "); v.Valid {
		t.Error("blank input must become SQL NULL")
	}
	if v := NullString(" hello "); !v.Valid || v.String != "hello" {
		t.Errorf("NullString trimmed = %#v", v)
	}
}

func TestNullTime(t *testing.T) {
	if v := NullTime(time.Time{}); v.Valid {
		t.Error("zero time must become SQL NULL")
	}
	now := time.Now()
	if v := NullTime(now); !v.Valid || !v.Time.Equal(now) {
		t.Errorf("NullTime = %#v", v)
	}
}

func TestValidAttendanceStatus(t *testing.T) {
	for _, s := range []AttendanceStatus{AttendanceAttending, AttendanceNotAttending, AttendancePending} {
		if !ValidAttendanceStatus(s) {
			t.Errorf("%q should be valid", s)
		}
	}
	if ValidAttendanceStatus("maybe") {
		t.Error("unknown status should be invalid")
	}
}
