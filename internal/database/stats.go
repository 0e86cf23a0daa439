package database

import "fmt"

// GuestStats are the per-invitation RSVP aggregates shown on the owner's
// guest list. TotalGuests sums party sizes over attending guests only.
type GuestStats struct {
	Total        int
	Attending    int
	NotAttending int
	Pending      int
	TotalGuests  int
}

// ComputeGuestStats derives the aggregates from an already-fetched guest
// list. Pure; no database access.
func ComputeGuestStats(guests []*Guest) GuestStats {
	var stats GuestStats
	for _, g := range guests {
		stats.Total++
		switch g.Attendance {
		case AttendanceAttending:
			stats.Attending++
			stats.TotalGuests += g.NumberOfGuests
		case AttendanceNotAttending:
			stats.NotAttending++
		default:
			stats.Pending++
		}
	}
	return stats
}

// AdminStats are the platform-wide counts on the admin dashboard.
type AdminStats struct {
	Users       int
	Invitations int
	ActiveMusic int
}

func (db *DB) GetAdminStats() (*AdminStats, error) {
	stats := &AdminStats{}

	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&stats.Users); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM invitations`).Scan(&stats.Invitations); err != nil {
		return nil, fmt.Errorf("failed to count invitations: %w", err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM music WHERE active = TRUE`).Scan(&stats.ActiveMusic); err != nil {
		return nil, fmt.Errorf("failed to count active music: %w", err)
	}

	return stats, nil
}

// TemplateCount is one bucket of the template usage histogram. The key is the
// raw stored template_id; retired or unknown ids keep their literal value.
type TemplateCount struct {
	TemplateID string
	Count      int
}

func (db *DB) GetTemplateHistogram() ([]TemplateCount, error) {
	rows, err := db.Query(
		`SELECT template_id, COUNT(*) FROM invitations GROUP BY template_id ORDER BY COUNT(*) DESC, template_id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get template histogram: %w", err)
	}
	defer rows.Close()

	var histogram []TemplateCount
	for rows.Next() {
		var tc TemplateCount
		if err := rows.Scan(&tc.TemplateID, &tc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan template count: %w", err)
		}
		histogram = append(histogram, tc)
	}

	return histogram, rows.Err()
}
