package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetLanguageFromRequest(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		cookie   string
		expected Language
	}{
		{"query param id", "/?lang=id", "", Indonesian},
		{"query param en", "/?lang=en", "", English},
		{"query param beats cookie", "/?lang=en", "id", English},
		{"cookie only", "/", "en", English},
		{"unknown query falls through", "/?lang=fr", "", Indonesian},
		{"default", "/", "", Indonesian},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: "lang", Value: tt.cookie})
			}
			if got := GetLanguageFromRequest(r); got != tt.expected {
				t.Errorf("GetLanguageFromRequest() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAttendanceLabel(t *testing.T) {
	tests := []struct {
		lang     Language
		status   string
		expected string
	}{
		{Indonesian, "attending", "Hadir"},
		{Indonesian, "not_attending", "Tidak Hadir"},
		{Indonesian, "pending", "Belum Konfirmasi"},
		{Indonesian, "something-else", "Belum Konfirmasi"},
		{English, "attending", "Attending"},
		{English, "not_attending", "Not Attending"},
		{English, "pending", "Pending"},
	}

	for _, tt := range tests {
		if got := AttendanceLabel(tt.lang, tt.status); got != tt.expected {
			t.Errorf("AttendanceLabel(%q, %q) = %q, want %q", tt.lang, tt.status, got, tt.expected)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, time.April, 19, 14, 0, 0, 0, time.UTC)

	if got := FormatDate(d, Indonesian); got != "19 April 2026" {
		t.Errorf("FormatDate(id) = %q", got)
	}
	if got := FormatDate(d, English); got != "April 19, 2026" {
		t.Errorf("FormatDate(en) = %q", got)
	}
	if got := FormatDateTime(d, Indonesian); got != "19 April 2026, 14:00" {
		t.Errorf("FormatDateTime(id) = %q", got)
	}
}
