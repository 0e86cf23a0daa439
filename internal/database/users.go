package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UpsertUser records a login: new emails get a fresh row, returning visitors
// get their display name refreshed.
func (db *DB) UpsertUser(email, name string) (*User, error) {
	u := &User{}
	err := db.QueryRow(
		`INSERT INTO users (id, email, name, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (email) DO UPDATE SET name = excluded.name
		 RETURNING id, email, name, created_at`,
		uuid.NewString(), email, name, time.Now(),
	).Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return u, nil
}

func (db *DB) GetUserByID(id string) (*User, error) {
	u := &User{}
	err := db.QueryRow(
		`SELECT id, email, name, created_at FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", mapNotFound(err))
	}
	return u, nil
}
