package database

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const guestColumns = `id, invitation_id, name, email, phone, attendance_status,
	number_of_guests, message, guest_code, created_at, updated_at`

// GenerateGuestCode returns a short random receipt code. It is stored on the
// guest row at write time so the code shown after submitting can be checked
// later.
func GenerateGuestCode() (string, error) {
	b := make([]byte, 4)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate guest code: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

// CreateGuest inserts a new RSVP entry for g.InvitationID. Guests are never
// updated through any flow, so concurrent submissions cannot conflict.
func (db *DB) CreateGuest(g *Guest) error {
	code, err := GenerateGuestCode()
	if err != nil {
		return err
	}

	g.ID = uuid.NewString()
	g.GuestCode = code
	now := time.Now()
	g.CreatedAt = now
	g.UpdatedAt = now

	if !ValidAttendanceStatus(g.Attendance) {
		g.Attendance = AttendancePending
	}
	if g.NumberOfGuests < 1 {
		g.NumberOfGuests = 1
	}

	_, err = db.Exec(
		`INSERT INTO guests (`+guestColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		g.ID, g.InvitationID, g.Name, g.Email, g.Phone, string(g.Attendance),
		g.NumberOfGuests, g.Message, g.GuestCode, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}

	return nil
}

// ListGuestsByInvitation retrieves every RSVP entry for one invitation in
// submission order. Guest lists are expected to stay small enough for a full
// scan.
func (db *DB) ListGuestsByInvitation(invitationID string) ([]*Guest, error) {
	rows, err := db.Query(
		`SELECT `+guestColumns+` FROM guests WHERE invitation_id = $1 ORDER BY created_at ASC`,
		invitationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	defer rows.Close()

	var guests []*Guest
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		guests = append(guests, g)
	}

	return guests, rows.Err()
}

// FindGuestByName performs the best-effort "check my status" lookup: a
// case-insensitive substring match within one invitation, returning at most
// one row under submission order. Returns (nil, nil) when nothing matches;
// similar names can surface the wrong guest, which is an accepted limitation.
func (db *DB) FindGuestByName(invitationID, query string) (*Guest, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	row := db.QueryRow(
		`SELECT `+guestColumns+` FROM guests
		 WHERE invitation_id = $1 AND LOWER(name) LIKE $2
		 ORDER BY created_at ASC LIMIT 1`,
		invitationID, pattern,
	)

	g, err := scanGuest(row)
	if err != nil {
		if mapNotFound(err) == ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find guest: %w", err)
	}
	return g, nil
}

func scanGuest(row rowScanner) (*Guest, error) {
	g := &Guest{}
	var status string
	err := row.Scan(
		&g.ID, &g.InvitationID, &g.Name, &g.Email, &g.Phone, &status,
		&g.NumberOfGuests, &g.Message, &g.GuestCode, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	g.Attendance = AttendanceStatus(status)
	return g, nil
}
