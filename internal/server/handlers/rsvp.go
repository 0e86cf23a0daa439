package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/undangin/undangin/internal/database"
	"github.com/undangin/undangin/internal/i18n"
	"github.com/undangin/undangin/internal/utils"
	"github.com/undangin/undangin/templates"
)

var validate = validator.New()

const maxPartySize = 5

// rsvpForm holds the parsed and validated RSVP form data
type rsvpForm struct {
	Name           string `validate:"required"`
	Email          string `validate:"omitempty,email"`
	Phone          string
	Attendance     string `validate:"required,oneof=attending not_attending pending"`
	NumberOfGuests int    `validate:"min=1,max=5"`
	Message        string
}

// parseRSVPForm parses and validates the RSVP form data. The invitation the
// guest responds to comes from the page context, never from the form.
func parseRSVPForm(r *http.Request) (*rsvpForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	form := &rsvpForm{
		Name:       strings.TrimSpace(r.FormValue("name")),
		Email:      strings.TrimSpace(r.FormValue("email")),
		Phone:      strings.TrimSpace(r.FormValue("phone")),
		Attendance: strings.TrimSpace(r.FormValue("attendance_status")),
	}
	if form.Attendance == "" {
		form.Attendance = string(database.AttendancePending)
	}

	// Party size is only solicited when attending; it is a small enumerated
	// choice, not an open numeric input.
	form.NumberOfGuests = 1
	if form.Attendance == string(database.AttendanceAttending) {
		if n, err := strconv.Atoi(r.FormValue("number_of_guests")); err == nil {
			form.NumberOfGuests = n
		}
		if form.NumberOfGuests < 1 {
			form.NumberOfGuests = 1
		}
		if form.NumberOfGuests > maxPartySize {
			form.NumberOfGuests = maxPartySize
		}
	}

	form.Message = strings.TrimSpace(r.FormValue("message"))

	if err := validate.Struct(form); err != nil {
		return nil, err
	}

	return form, nil
}

// handleRSVPSubmit records one guest's response for the invitation resolved
// from the URL. Guests are insert-only; re-submitting adds a new row.
func handleRSVPSubmit(s Server, w http.ResponseWriter, r *http.Request, inv *database.Invitation, lang i18n.Language) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/invitation/"+inv.Slug, http.StatusSeeOther)
		return
	}

	form, err := parseRSVPForm(r)
	if err != nil {
		http.Error(w, "Name and a valid attendance choice are required", http.StatusBadRequest)
		return
	}

	phone := form.Phone
	if phone != "" {
		normalized, err := utils.NormalizePhoneNumber(phone)
		if err != nil {
			http.Error(w, "Invalid phone number format", http.StatusBadRequest)
			return
		}
		phone = normalized
	}

	guest := &database.Guest{
		InvitationID:   inv.ID,
		Name:           form.Name,
		Email:          database.NullString(form.Email),
		Phone:          database.NullString(phone),
		Attendance:     database.AttendanceStatus(form.Attendance),
		NumberOfGuests: form.NumberOfGuests,
		Message:        database.NullString(form.Message),
	}

	if err := s.GetDB().CreateGuest(guest); err != nil {
		s.GetLogger().Error().Err(err).Str("invitation", inv.ID).Msg("failed to save RSVP")
		http.Error(w, "Failed to save response, please try again", http.StatusInternalServerError)
		return
	}

	if err := templates.RSVPConfirmation(lang, guest.Name, guest.GuestCode, inv.Slug).Render(r.Context(), w); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// guestSearchResult is the JSON payload of the "check my status" lookup
type guestSearchResult struct {
	Found     bool   `json:"found"`
	Name      string `json:"name,omitempty"`
	Status    string `json:"status,omitempty"`
	Label     string `json:"label,omitempty"`
	PartySize int    `json:"party_size,omitempty"`
}

// handleGuestSearch is best-effort: a case-insensitive partial name match
// returning at most one guest. It is not an identity-verified lookup.
func handleGuestSearch(s Server, w http.ResponseWriter, r *http.Request, inv *database.Invitation, lang i18n.Language) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		http.Error(w, "Missing query", http.StatusBadRequest)
		return
	}

	guest, err := s.GetDB().FindGuestByName(inv.ID, query)
	if err != nil {
		s.GetLogger().Error().Err(err).Str("invitation", inv.ID).Msg("guest search failed")
		http.Error(w, "Search failed, please try again", http.StatusInternalServerError)
		return
	}

	result := guestSearchResult{}
	if guest != nil {
		result = guestSearchResult{
			Found:     true,
			Name:      guest.Name,
			Status:    string(guest.Attendance),
			Label:     i18n.AttendanceLabel(lang, string(guest.Attendance)),
			PartySize: guest.NumberOfGuests,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		s.GetLogger().Error().Err(err).Msg("failed to encode guest search result")
	}
}
