package i18n

import (
	"fmt"
	"net/http"
	"time"
)

type Language string

const (
	Indonesian Language = "id"
	English    Language = "en"
)

// GetLanguageFromRequest extracts language from request (query param or cookie)
func GetLanguageFromRequest(r *http.Request) Language {
	// Check query parameter first
	if lang := r.URL.Query().Get("lang"); lang != "" {
		if lang == "id" {
			return Indonesian
		}
		if lang == "en" {
			return English
		}
	}

	// Check cookie
	if cookie, err := r.Cookie("lang"); err == nil {
		if cookie.Value == "id" {
			return Indonesian
		}
		if cookie.Value == "en" {
			return English
		}
	}

	// Default to Indonesian
	return Indonesian
}

// AttendanceLabel localizes an attendance status for display and export.
// Unknown statuses fall through to the pending label.
func AttendanceLabel(lang Language, status string) string {
	if lang == English {
		switch status {
		case "attending":
			return "Attending"
		case "not_attending":
			return "Not Attending"
		default:
			return "Pending"
		}
	}
	switch status {
	case "attending":
		return "Hadir"
	case "not_attending":
		return "Tidak Hadir"
	default:
		return "Belum Konfirmasi"
	}
}

var indonesianMonths = []string{"", "Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember"}

// FormatDate formats a date for display based on language.
// Format: "19 April 2026" for Indonesian or "April 19, 2026" for English.
func FormatDate(t time.Time, lang Language) string {
	if lang == English {
		return t.Format("January 2, 2006")
	}
	return fmt.Sprintf("%d %s %d", t.Day(), indonesianMonths[t.Month()], t.Year())
}

// FormatDateTime adds the wall-clock time to FormatDate.
func FormatDateTime(t time.Time, lang Language) string {
	return fmt.Sprintf("%s, %02d:%02d", FormatDate(t, lang), t.Hour(), t.Minute())
}
