package database

import (
	"database/sql"
	"strings"
	"time"
)

// AttendanceStatus is the closed set of RSVP answers a guest can give.
type AttendanceStatus string

const (
	AttendanceAttending    AttendanceStatus = "attending"
	AttendanceNotAttending AttendanceStatus = "not_attending"
	AttendancePending      AttendanceStatus = "pending"
)

// ValidAttendanceStatus reports whether s is one of the known statuses.
func ValidAttendanceStatus(s AttendanceStatus) bool {
	switch s {
	case AttendanceAttending, AttendanceNotAttending, AttendancePending:
		return true
	}
	return false
}

type User struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
}

// Invitation is one couple's wedding invitation. Optional fields use sql.Null
// types so renderers can tell "not provided" from "provided but blank".
// TemplateID is an opaque string, deliberately not validated against the
// template registry at write time; unknown ids fall back at render time.
type Invitation struct {
	ID         string
	UserID     string
	Title      string
	Slug       string
	TemplateID string

	BrideName   string
	GroomName   string
	BrideFather sql.NullString
	BrideMother sql.NullString
	GroomFather sql.NullString
	GroomMother sql.NullString

	MainDate      time.Time
	AkadDate      sql.NullTime
	ReceptionDate sql.NullTime

	Location        string
	LocationAddress sql.NullString
	LocationMapURL  sql.NullString

	LoveStory  sql.NullString
	Gallery    []string
	BridePhoto sql.NullString
	GroomPhoto sql.NullString
	MusicID    sql.NullString

	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Guest is one RSVP entry, tied to exactly one invitation. Rows are
// insert-only; there is no edit or delete flow.
type Guest struct {
	ID             string
	InvitationID   string
	Name           string
	Email          sql.NullString
	Phone          sql.NullString
	Attendance     AttendanceStatus
	NumberOfGuests int
	Message        sql.NullString
	GuestCode      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Music is one entry of the admin-managed background music catalog.
type Music struct {
	ID        string
	Title     string
	Artist    sql.NullString
	URL       string
	Active    bool
	CreatedAt time.Time
}

const gallerySeparator = "\n"

// encodeGallery packs the ordered gallery URL list into its single-column
// text encoding. An empty list encodes to the empty string.
func encodeGallery(urls []string) string {
	return strings.Join(urls, gallerySeparator)
}

// decodeGallery is the inverse of encodeGallery. It always returns a non-nil
// slice; every renderer iterates the gallery unconditionally.
func decodeGallery(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, gallerySeparator)
}

// NullString converts a trimmed form value into its persisted representation:
// blank input becomes SQL NULL, anything else is stored as-is.
func NullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// NullTime wraps an optional date-time; the zero time means "not provided".
func NullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
