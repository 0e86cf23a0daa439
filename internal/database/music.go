package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const musicColumns = `id, title, artist, url, active, created_at`

// CreateMusic adds a catalog entry. Music is managed only through the admin
// surface and referenced read-only by invitations.
func (db *DB) CreateMusic(m *Music) error {
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now()

	_, err := db.Exec(
		`INSERT INTO music (`+musicColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.Title, m.Artist, m.URL, m.Active, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create music: %w", err)
	}

	return nil
}

func (db *DB) UpdateMusic(m *Music) error {
	result, err := db.Exec(
		`UPDATE music SET title = $1, artist = $2, url = $3, active = $4 WHERE id = $5`,
		m.Title, m.Artist, m.URL, m.Active, m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update music: %w", err)
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

// DeleteMusic removes a catalog entry. Invitations referencing it keep a
// dangling music_id, which renders as "no music" rather than failing.
func (db *DB) DeleteMusic(id string) error {
	_, err := db.Exec(`DELETE FROM music WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete music: %w", err)
	}
	return nil
}

func (db *DB) GetMusicByID(id string) (*Music, error) {
	m := &Music{}
	err := db.QueryRow(
		`SELECT `+musicColumns+` FROM music WHERE id = $1`,
		id,
	).Scan(&m.ID, &m.Title, &m.Artist, &m.URL, &m.Active, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get music: %w", mapNotFound(err))
	}
	return m, nil
}

// ListMusic retrieves catalog entries, optionally restricted to the ones
// offered in the selection UI.
func (db *DB) ListMusic(activeOnly bool) ([]*Music, error) {
	query := `SELECT ` + musicColumns + ` FROM music ORDER BY title ASC`
	if activeOnly {
		query = `SELECT ` + musicColumns + ` FROM music WHERE active = TRUE ORDER BY title ASC`
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list music: %w", err)
	}
	defer rows.Close()

	var list []*Music
	for rows.Next() {
		m := &Music{}
		if err := rows.Scan(&m.ID, &m.Title, &m.Artist, &m.URL, &m.Active, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan music: %w", err)
		}
		list = append(list, m)
	}

	return list, rows.Err()
}
