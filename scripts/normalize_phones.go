package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/undangin/undangin/internal/utils"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./undangin.db"
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// Get all guests with a phone on record
	rows, err := db.Query("SELECT id, phone FROM guests WHERE phone IS NOT NULL AND phone != ''")
	if err != nil {
		log.Fatalf("Failed to query guests: %v", err)
	}
	defer rows.Close()

	type guest struct {
		id    string
		phone string
	}

	var guests []guest
	for rows.Next() {
		var g guest
		if err := rows.Scan(&g.id, &g.phone); err != nil {
			log.Printf("Failed to scan row: %v", err)
			continue
		}
		guests = append(guests, g)
	}

	fmt.Printf("Found %d guests to process\n", len(guests))

	// Normalize each phone number
	updated := 0
	failed := 0
	for _, g := range guests {
		normalized, err := utils.NormalizePhoneNumber(g.phone)
		if err != nil {
			log.Printf("Failed to normalize phone %q (ID: %s): %v", g.phone, g.id, err)
			failed++
			continue
		}

		// Only update if the phone number changed
		if normalized == g.phone {
			continue
		}

		if _, err := db.Exec("UPDATE guests SET phone = $1 WHERE id = $2", normalized, g.id); err != nil {
			log.Printf("Failed to update guest %s: %v", g.id, err)
			failed++
			continue
		}
		updated++
	}

	fmt.Printf("Done: %d updated, %d failed\n", updated, failed)
}
