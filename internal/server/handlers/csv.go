package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/undangin/undangin/internal/database"
	"github.com/undangin/undangin/internal/i18n"
	"github.com/undangin/undangin/internal/slug"
)

const csvHeader = "Nama,Email,Telepon,Status Kehadiran,Jumlah Tamu,Pesan,Tanggal\n"

// escapeCSVField escapes a string for CSV format
func escapeCSVField(field string) string {
	// Escape double quotes by doubling them; newlines stay as-is, the
	// surrounding quotes keep them inside the field
	return strings.ReplaceAll(field, "\"", "\"\"")
}

// buildCSVRow quotes every field of one guest row
func buildCSVRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = "\"" + escapeCSVField(f) + "\""
	}
	return strings.Join(quoted, ",") + "\n"
}

// BuildGuestCSV serializes an already-fetched guest list: a deterministic
// transform with a fixed column order, no re-fetch.
func BuildGuestCSV(guests []*database.Guest, lang i18n.Language) string {
	var sb strings.Builder
	sb.WriteString(csvHeader)

	for _, g := range guests {
		sb.WriteString(buildCSVRow([]string{
			g.Name,
			g.Email.String,
			g.Phone.String,
			i18n.AttendanceLabel(lang, string(g.Attendance)),
			strconv.Itoa(g.NumberOfGuests),
			g.Message.String,
			i18n.FormatDate(g.CreatedAt, lang),
		}))
	}

	return sb.String()
}

// CSVFilename derives the download name deterministically from the
// invitation title.
func CSVFilename(title string) string {
	name := slug.Sanitize(title)
	if name == "" {
		name = "undangan"
	}
	return name + "-tamu.csv"
}

// HandleExportGuestsCSV downloads the guest list of an owned invitation
func HandleExportGuestsCSV(s AuthServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/dashboard/invitations/guests/export/")
		inv, ok := getOwnedInvitation(s, w, r, id)
		if !ok {
			return
		}

		guests, err := s.GetDB().ListGuestsByInvitation(inv.ID)
		if err != nil {
			s.GetLogger().Error().Err(err).Str("invitation", inv.ID).Msg("failed to list guests for export")
			http.Error(w, "Failed to load guests", http.StatusInternalServerError)
			return
		}

		lang := i18n.GetLanguageFromRequest(r)

		// Set CSV headers
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename="+CSVFilename(inv.Title))

		// Write UTF-8 BOM for Excel compatibility
		w.Write([]byte{0xEF, 0xBB, 0xBF})
		w.Write([]byte(BuildGuestCSV(guests, lang)))
	}
}
