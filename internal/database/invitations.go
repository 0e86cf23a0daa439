package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const invitationColumns = `id, user_id, title, slug, template_id,
	bride_name, groom_name, bride_father, bride_mother, groom_father, groom_mother,
	main_date, akad_date, reception_date,
	location, location_address, location_map_url,
	love_story, gallery, bride_photo, groom_photo, music_id,
	active, created_at, updated_at`

// CreateInvitation inserts a new invitation owned by inv.UserID. The id and
// timestamps are assigned here; a slug collision returns ErrSlugTaken.
func (db *DB) CreateInvitation(inv *Invitation) error {
	inv.ID = uuid.NewString()
	now := time.Now()
	inv.CreatedAt = now
	inv.UpdatedAt = now
	inv.Active = true

	_, err := db.Exec(
		`INSERT INTO invitations (`+invitationColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)`,
		inv.ID, inv.UserID, inv.Title, inv.Slug, inv.TemplateID,
		inv.BrideName, inv.GroomName, inv.BrideFather, inv.BrideMother, inv.GroomFather, inv.GroomMother,
		inv.MainDate, inv.AkadDate, inv.ReceptionDate,
		inv.Location, inv.LocationAddress, inv.LocationMapURL,
		inv.LoveStory, encodeGallery(inv.Gallery), inv.BridePhoto, inv.GroomPhoto, inv.MusicID,
		inv.Active, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create invitation: %w", mapSlugConflict(err))
	}

	return nil
}

// UpdateInvitation overwrites the full mutable field set of an existing
// invitation. Ownership and created_at never change; there is no partial
// patch. Last writer wins.
func (db *DB) UpdateInvitation(inv *Invitation) error {
	inv.UpdatedAt = time.Now()

	result, err := db.Exec(
		`UPDATE invitations SET
			title = $1, slug = $2, template_id = $3,
			bride_name = $4, groom_name = $5,
			bride_father = $6, bride_mother = $7, groom_father = $8, groom_mother = $9,
			main_date = $10, akad_date = $11, reception_date = $12,
			location = $13, location_address = $14, location_map_url = $15,
			love_story = $16, gallery = $17, bride_photo = $18, groom_photo = $19, music_id = $20,
			updated_at = $21
		 WHERE id = $22`,
		inv.Title, inv.Slug, inv.TemplateID,
		inv.BrideName, inv.GroomName,
		inv.BrideFather, inv.BrideMother, inv.GroomFather, inv.GroomMother,
		inv.MainDate, inv.AkadDate, inv.ReceptionDate,
		inv.Location, inv.LocationAddress, inv.LocationMapURL,
		inv.LoveStory, encodeGallery(inv.Gallery), inv.BridePhoto, inv.GroomPhoto, inv.MusicID,
		inv.UpdatedAt, inv.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update invitation: %w", mapSlugConflict(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// GetInvitationByID retrieves an invitation by id regardless of its active
// flag. This is the owner-facing lookup.
func (db *DB) GetInvitationByID(id string) (*Invitation, error) {
	row := db.QueryRow(
		`SELECT `+invitationColumns+` FROM invitations WHERE id = $1`,
		id,
	)
	inv, err := scanInvitation(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get invitation: %w", mapNotFound(err))
	}
	return inv, nil
}

// GetInvitationBySlug retrieves an invitation by its public slug. Only active
// invitations are visible through this lookup.
func (db *DB) GetInvitationBySlug(slug string) (*Invitation, error) {
	row := db.QueryRow(
		`SELECT `+invitationColumns+` FROM invitations WHERE slug = $1 AND active = TRUE`,
		slug,
	)
	inv, err := scanInvitation(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get invitation by slug: %w", mapNotFound(err))
	}
	return inv, nil
}

// ListInvitationsByUser retrieves all invitations owned by a user, newest
// first, including inactive ones.
func (db *DB) ListInvitationsByUser(userID string) ([]*Invitation, error) {
	rows, err := db.Query(
		`SELECT `+invitationColumns+` FROM invitations WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, inv)
	}

	return invitations, rows.Err()
}

// SetInvitationActive flips public visibility without deleting anything.
func (db *DB) SetInvitationActive(id string, active bool) error {
	result, err := db.Exec(
		`UPDATE invitations SET active = $1, updated_at = $2 WHERE id = $3`,
		active, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to set invitation active: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvitation(row rowScanner) (*Invitation, error) {
	inv := &Invitation{}
	var gallery string
	err := row.Scan(
		&inv.ID, &inv.UserID, &inv.Title, &inv.Slug, &inv.TemplateID,
		&inv.BrideName, &inv.GroomName, &inv.BrideFather, &inv.BrideMother, &inv.GroomFather, &inv.GroomMother,
		&inv.MainDate, &inv.AkadDate, &inv.ReceptionDate,
		&inv.Location, &inv.LocationAddress, &inv.LocationMapURL,
		&inv.LoveStory, &gallery, &inv.BridePhoto, &inv.GroomPhoto, &inv.MusicID,
		&inv.Active, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.Gallery = decodeGallery(gallery)
	return inv, nil
}
