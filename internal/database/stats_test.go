package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeGuestStats(t *testing.T) {
	guests := []*Guest{
		{Attendance: AttendanceAttending, NumberOfGuests: 2},
		{Attendance: AttendanceAttending, NumberOfGuests: 1},
		{Attendance: AttendanceAttending, NumberOfGuests: 3},
		{Attendance: AttendanceNotAttending, NumberOfGuests: 1},
		{Attendance: AttendanceNotAttending, NumberOfGuests: 4},
		{Attendance: AttendancePending, NumberOfGuests: 2},
	}

	stats := ComputeGuestStats(guests)

	// Party sizes only count toward TotalGuests for attending guests
	assert.Equal(t, GuestStats{
		Total:        6,
		Attending:    3,
		NotAttending: 2,
		Pending:      1,
		TotalGuests:  6,
	}, stats)
}

func TestComputeGuestStatsEmpty(t *testing.T) {
	assert.Equal(t, GuestStats{}, ComputeGuestStats(nil))
}

func TestGetTemplateHistogramKeepsUnknownIDs(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db := &DB{DB: mockDB}

	rows := sqlmock.NewRows([]string{"template_id", "count"}).
		AddRow("classic-elegance", 12).
		AddRow("retired-2019", 3)
	mock.ExpectQuery(`GROUP BY template_id`).WillReturnRows(rows)

	histogram, err := db.GetTemplateHistogram()
	require.NoError(t, err)
	require.Len(t, histogram, 2)

	// Retired ids stay under their literal value, never a catchall bucket
	assert.Equal(t, TemplateCount{TemplateID: "retired-2019", Count: 3}, histogram[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAdminStats(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db := &DB{DB: mockDB}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM invitations`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(17))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM music WHERE active = TRUE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	stats, err := db.GetAdminStats()
	require.NoError(t, err)
	assert.Equal(t, &AdminStats{Users: 42, Invitations: 17, ActiveMusic: 5}, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}
