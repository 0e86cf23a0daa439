package database

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var guestTestColumns = []string{
	"id", "invitation_id", "name", "email", "phone", "attendance_status",
	"number_of_guests", "message", "guest_code", "created_at", "updated_at",
}

func TestGenerateGuestCode(t *testing.T) {
	code, err := GenerateGuestCode()
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{8}$`), code)

	other, err := GenerateGuestCode()
	require.NoError(t, err)
	assert.NotEqual(t, code, other)
}

func TestCreateGuestAppliesDefaults(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`INSERT INTO guests`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	g := &Guest{
		InvitationID:   "inv-1",
		Name:           "Ana Putri",
		Attendance:     "maybe", // not in the closed set
		NumberOfGuests: 0,
	}
	require.NoError(t, db.CreateGuest(g))

	assert.NotEmpty(t, g.ID)
	assert.NotEmpty(t, g.GuestCode, "the receipt code is generated and stored at write time")
	assert.Equal(t, AttendancePending, g.Attendance)
	assert.Equal(t, 1, g.NumberOfGuests, "party size has a floor of one")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindGuestByNameMatchesCaseInsensitive(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Now()
	rows := sqlmock.NewRows(guestTestColumns).AddRow(
		"guest-1", "inv-1", "Ana Putri", nil, nil, "attending",
		2, nil, "AB12CD34", now, now,
	)

	// The query string is lowered and wrapped for a substring match, and the
	// statement caps the result at one row
	mock.ExpectQuery(`LOWER\(name\) LIKE \$2`).
		WithArgs("inv-1", "%ana%").
		WillReturnRows(rows)

	g, err := db.FindGuestByName("inv-1", "  ANA ")
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, "Ana Putri", g.Name)
	assert.Equal(t, AttendanceAttending, g.Attendance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindGuestByNameNoMatch(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`LOWER\(name\) LIKE \$2`).
		WithArgs("inv-1", "%zorro%").
		WillReturnError(sql.ErrNoRows)

	g, err := db.FindGuestByName("inv-1", "zorro")
	require.NoError(t, err)
	assert.Nil(t, g, "no match is not an error for the self-lookup")
}

func TestListGuestsByInvitation(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Now()
	rows := sqlmock.NewRows(guestTestColumns).
		AddRow("guest-1", "inv-1", "Ana Putri", "ana@example.com", nil, "attending", 2, "Selamat!", "AB12CD34", now, now).
		AddRow("guest-2", "inv-1", "Joko", nil, nil, "not_attending", 1, nil, "EF56AB78", now, now)

	mock.ExpectQuery(`FROM guests WHERE invitation_id = \$1 ORDER BY created_at ASC`).
		WithArgs("inv-1").
		WillReturnRows(rows)

	guests, err := db.ListGuestsByInvitation("inv-1")
	require.NoError(t, err)
	require.Len(t, guests, 2)

	assert.Equal(t, "ana@example.com", guests[0].Email.String)
	assert.False(t, guests[1].Email.Valid)
	assert.Equal(t, AttendanceNotAttending, guests[1].Attendance)
}
