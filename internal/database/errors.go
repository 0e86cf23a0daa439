package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	sqlite3 "github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrSlugTaken is returned when an invitation write collides with an
	// existing slug. The unique index is the source of truth for slugs.
	ErrSlugTaken = errors.New("slug already taken")
)

// mapSlugConflict converts a driver-level unique violation on the slug index
// into ErrSlugTaken so handlers can show a specific message.
func mapSlugConflict(err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return ErrSlugTaken
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
