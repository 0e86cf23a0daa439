package database

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var invitationTestColumns = []string{
	"id", "user_id", "title", "slug", "template_id",
	"bride_name", "groom_name", "bride_father", "bride_mother", "groom_father", "groom_mother",
	"main_date", "akad_date", "reception_date",
	"location", "location_address", "location_map_url",
	"love_story", "gallery", "bride_photo", "groom_photo", "music_id",
	"active", "created_at", "updated_at",
}

func invitationTestRow(gallery string, active bool) *sqlmock.Rows {
	now := time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(invitationTestColumns).AddRow(
		"inv-1", "user-1", "Pernikahan Budi & Sari", "budi-sari", "classic-elegance",
		"Sari", "Budi", "Hartono", nil, nil, "Sumiati",
		time.Date(2026, time.April, 19, 10, 0, 0, 0, time.UTC), nil, nil,
		"Gedung Serbaguna", "Jl. Melati 5", nil,
		nil, gallery, nil, nil, nil,
		active, now, now,
	)
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return &DB{DB: mockDB}, mock
}

func TestGetInvitationBySlugRequiresActive(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`FROM invitations WHERE slug = \$1 AND active = TRUE`).
		WithArgs("budi-sari").
		WillReturnRows(invitationTestRow("", true))

	inv, err := db.GetInvitationBySlug("budi-sari")
	require.NoError(t, err)

	assert.Equal(t, "inv-1", inv.ID)
	assert.Equal(t, "Budi", inv.GroomName)
	assert.Equal(t, "Hartono", inv.BrideFather.String)
	assert.False(t, inv.BrideMother.Valid)

	// An empty stored gallery reads back as an empty ordered sequence,
	// never a missing field
	require.NotNil(t, inv.Gallery)
	assert.Empty(t, inv.Gallery)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetInvitationBySlugNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`FROM invitations WHERE slug = \$1 AND active = TRUE`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := db.GetInvitationBySlug("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetInvitationByIDIgnoresActiveFlag(t *testing.T) {
	db, mock := newMockDB(t)

	// The owner lookup has no active filter; a deactivated invitation still
	// resolves by id
	mock.ExpectQuery(`FROM invitations WHERE id = \$1`).
		WithArgs("inv-1").
		WillReturnRows(invitationTestRow("https://cdn.example.com/a.jpg\nhttps://cdn.example.com/b.jpg", false))

	inv, err := db.GetInvitationByID("inv-1")
	require.NoError(t, err)
	assert.False(t, inv.Active)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}, inv.Gallery)
}

func TestCreateInvitationAssignsIdentity(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`INSERT INTO invitations`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	inv := &Invitation{
		UserID:    "user-1",
		Title:     "Pernikahan Budi & Sari",
		Slug:      "budi-sari",
		GroomName: "Budi",
		BrideName: "Sari",
		MainDate:  time.Now(),
		Location:  "Gedung Serbaguna",
	}
	require.NoError(t, db.CreateInvitation(inv))

	assert.NotEmpty(t, inv.ID)
	assert.True(t, inv.Active)
	assert.False(t, inv.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInvitationSlugConflict(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`INSERT INTO invitations`).
		WillReturnError(&pq.Error{Code: "23505"})

	err := db.CreateInvitation(&Invitation{Slug: "budi-sari"})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestUpdateInvitationSlugConflict(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE invitations SET`).
		WillReturnError(&pq.Error{Code: "23505"})

	err := db.UpdateInvitation(&Invitation{ID: "inv-1", Slug: "taken"})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestUpdateInvitationNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE invitations SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := db.UpdateInvitation(&Invitation{ID: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetInvitationActive(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE invitations SET active = \$1`).
		WithArgs(false, sqlmock.AnyArg(), "inv-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, db.SetInvitationActive("inv-1", false))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
	assert.False(t, isUniqueViolation(nil))
}
