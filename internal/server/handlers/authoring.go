package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/undangin/undangin/internal/database"
	"github.com/undangin/undangin/internal/i18n"
	"github.com/undangin/undangin/internal/slug"
	"github.com/undangin/undangin/templates"
)

// datetime-local inputs post this layout
const formDateLayout = "2006-01-02T15:04"

// invitationForm holds the parsed authoring form before conversion to a
// database record
type invitationForm struct {
	Title     string `validate:"required"`
	GroomName string `validate:"required"`
	BrideName string `validate:"required"`
	Location  string `validate:"required"`
	MainDate  string `validate:"required"`
}

// HandleDashboard lists the current user's invitations
func HandleDashboard(s AuthServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := s.GetCurrentUser(r)

		invitations, err := s.GetDB().ListInvitationsByUser(user.ID)
		if err != nil {
			s.GetLogger().Error().Err(err).Str("user", user.ID).Msg("failed to list invitations")
			http.Error(w, "Failed to load invitations", http.StatusInternalServerError)
			return
		}

		if err := templates.Dashboard(user.Name, invitations).Render(r.Context(), w); err != nil {
			http.Error(w, "Failed to render page", http.StatusInternalServerError)
		}
	}
}

// HandleNewInvitation shows an empty authoring form
func HandleNewInvitation(s AuthServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := s.GetCurrentUser(r)
		form := templates.InvitationFormData{TemplateID: templates.DefaultTemplateID}
		renderInvitationForm(s, w, r, user.Name, form, "")
	}
}

func renderInvitationForm(s Server, w http.ResponseWriter, r *http.Request, userName string, form templates.InvitationFormData, errorMsg string) {
	musicOptions, err := s.GetDB().ListMusic(true)
	if err != nil {
		s.GetLogger().Error().Err(err).Msg("failed to list music options")
		musicOptions = nil
	}

	if err := templates.InvitationForm(userName, form, musicOptions, errorMsg).Render(r.Context(), w); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// parseInvitationForm reads the posted authoring form into page state and
// validates the required fields
func parseInvitationForm(r *http.Request) (templates.InvitationFormData, error) {
	if err := r.ParseForm(); err != nil {
		return templates.InvitationFormData{}, err
	}

	form := templates.InvitationFormData{
		Title:           strings.TrimSpace(r.FormValue("title")),
		Slug:            strings.TrimSpace(r.FormValue("slug")),
		TemplateID:      strings.TrimSpace(r.FormValue("template_id")),
		GroomName:       strings.TrimSpace(r.FormValue("groom_name")),
		BrideName:       strings.TrimSpace(r.FormValue("bride_name")),
		GroomFather:     strings.TrimSpace(r.FormValue("groom_father")),
		GroomMother:     strings.TrimSpace(r.FormValue("groom_mother")),
		BrideFather:     strings.TrimSpace(r.FormValue("bride_father")),
		BrideMother:     strings.TrimSpace(r.FormValue("bride_mother")),
		MainDate:        strings.TrimSpace(r.FormValue("main_date")),
		AkadDate:        strings.TrimSpace(r.FormValue("akad_date")),
		ReceptionDate:   strings.TrimSpace(r.FormValue("reception_date")),
		Location:        strings.TrimSpace(r.FormValue("location")),
		LocationAddress: strings.TrimSpace(r.FormValue("location_address")),
		LocationMapURL:  strings.TrimSpace(r.FormValue("location_map_url")),
		LoveStory:       strings.TrimSpace(r.FormValue("love_story")),
		Gallery:         r.FormValue("gallery"),
		GroomPhoto:      strings.TrimSpace(r.FormValue("groom_photo")),
		BridePhoto:      strings.TrimSpace(r.FormValue("bride_photo")),
		MusicID:         strings.TrimSpace(r.FormValue("music_id")),
	}

	if err := validate.Struct(invitationForm{
		Title:     form.Title,
		GroomName: form.GroomName,
		BrideName: form.BrideName,
		Location:  form.Location,
		MainDate:  form.MainDate,
	}); err != nil {
		return form, err
	}

	return form, nil
}

// applyInvitationForm copies the form's full field set onto a record. Create
// and update share this; there is no partial patch.
func applyInvitationForm(inv *database.Invitation, form templates.InvitationFormData) error {
	mainDate, err := time.Parse(formDateLayout, form.MainDate)
	if err != nil {
		return err
	}

	inv.Title = form.Title
	inv.TemplateID = form.TemplateID
	inv.GroomName = form.GroomName
	inv.BrideName = form.BrideName
	inv.GroomFather = database.NullString(form.GroomFather)
	inv.GroomMother = database.NullString(form.GroomMother)
	inv.BrideFather = database.NullString(form.BrideFather)
	inv.BrideMother = database.NullString(form.BrideMother)
	inv.MainDate = mainDate
	inv.Location = form.Location
	inv.LocationAddress = database.NullString(form.LocationAddress)
	inv.LocationMapURL = database.NullString(form.LocationMapURL)
	inv.LoveStory = database.NullString(form.LoveStory)
	inv.Gallery = parseGalleryField(form.Gallery)
	inv.GroomPhoto = database.NullString(form.GroomPhoto)
	inv.BridePhoto = database.NullString(form.BridePhoto)
	inv.MusicID = database.NullString(form.MusicID)

	// Akad and reception are independent optionals with no ordering rule
	inv.AkadDate = database.NullTime(parseOptionalDate(form.AkadDate))
	inv.ReceptionDate = database.NullTime(parseOptionalDate(form.ReceptionDate))

	// The default slug is only a convenience seed; the author may override
	// it, and the unique index has the final word
	inv.Slug = slug.Sanitize(form.Slug)
	if inv.Slug == "" {
		inv.Slug = slug.Derive(form.GroomName, form.BrideName)
	}

	return nil
}

func parseOptionalDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(formDateLayout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// parseGalleryField splits the one-URL-per-line textarea into the ordered
// gallery list. Uploaded storage URLs and external links are both fine and
// indistinguishable here.
func parseGalleryField(raw string) []string {
	urls := []string{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			urls = append(urls, line)
		}
	}
	return urls
}

// HandleCreateInvitation persists a new invitation owned by the current user
func HandleCreateInvitation(s AuthServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}

		user := s.GetCurrentUser(r)

		form, err := parseInvitationForm(r)
		if err != nil {
			renderInvitationForm(s, w, r, user.Name, form, "Judul, nama mempelai, tanggal, dan lokasi wajib diisi")
			return
		}

		inv := &database.Invitation{UserID: user.ID}
		if err := applyInvitationForm(inv, form); err != nil {
			renderInvitationForm(s, w, r, user.Name, form, "Format tanggal tidak valid")
			return
		}

		if err := s.GetDB().CreateInvitation(inv); err != nil {
			if errors.Is(err, database.ErrSlugTaken) {
				renderInvitationForm(s, w, r, user.Name, form, "Slug sudah digunakan, silakan pilih yang lain")
				return
			}
			s.GetLogger().Error().Err(err).Str("user", user.ID).Msg("failed to create invitation")
			renderInvitationForm(s, w, r, user.Name, form, "Gagal menyimpan, silakan coba lagi")
			return
		}

		http.Redirect(w, r, "/invitation/"+inv.Slug, http.StatusSeeOther)
	}
}

// getOwnedInvitation loads an invitation by id and checks it belongs to the
// current user; other people's records redirect away rather than erroring
func getOwnedInvitation(s AuthServer, w http.ResponseWriter, r *http.Request, id string) (*database.Invitation, bool) {
	user := s.GetCurrentUser(r)

	inv, err := s.GetDB().GetInvitationByID(id)
	if err != nil || inv.UserID != user.ID {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return nil, false
	}

	return inv, true
}

// HandleEditInvitation shows the authoring form prefilled from an existing
// invitation
func HandleEditInvitation(s AuthServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/dashboard/invitations/edit/")
		inv, ok := getOwnedInvitation(s, w, r, id)
		if !ok {
			return
		}

		user := s.GetCurrentUser(r)
		renderInvitationForm(s, w, r, user.Name, formDataFromInvitation(inv), "")
	}
}

func formDataFromInvitation(inv *database.Invitation) templates.InvitationFormData {
	form := templates.InvitationFormData{
		ID:              inv.ID,
		Title:           inv.Title,
		Slug:            inv.Slug,
		TemplateID:      inv.TemplateID,
		GroomName:       inv.GroomName,
		BrideName:       inv.BrideName,
		GroomFather:     inv.GroomFather.String,
		GroomMother:     inv.GroomMother.String,
		BrideFather:     inv.BrideFather.String,
		BrideMother:     inv.BrideMother.String,
		MainDate:        inv.MainDate.Format(formDateLayout),
		Location:        inv.Location,
		LocationAddress: inv.LocationAddress.String,
		LocationMapURL:  inv.LocationMapURL.String,
		LoveStory:       inv.LoveStory.String,
		Gallery:         strings.Join(inv.Gallery, "\n"),
		GroomPhoto:      inv.GroomPhoto.String,
		BridePhoto:      inv.BridePhoto.String,
		MusicID:         inv.MusicID.String,
	}
	if inv.AkadDate.Valid {
		form.AkadDate = inv.AkadDate.Time.Format(formDateLayout)
	}
	if inv.ReceptionDate.Valid {
		form.ReceptionDate = inv.ReceptionDate.Time.Format(formDateLayout)
	}
	return form
}

// HandleUpdateInvitation overwrites the full field set of an owned invitation
func HandleUpdateInvitation(s AuthServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}

		id := strings.TrimPrefix(r.URL.Path, "/dashboard/invitations/update/")
		inv, ok := getOwnedInvitation(s, w, r, id)
		if !ok {
			return
		}

		user := s.GetCurrentUser(r)

		form, err := parseInvitationForm(r)
		form.ID = inv.ID
		if err != nil {
			renderInvitationForm(s, w, r, user.Name, form, "Judul, nama mempelai, tanggal, dan lokasi wajib diisi")
			return
		}

		if err := applyInvitationForm(inv, form); err != nil {
			renderInvitationForm(s, w, r, user.Name, form, "Format tanggal tidak valid")
			return
		}

		if err := s.GetDB().UpdateInvitation(inv); err != nil {
			if errors.Is(err, database.ErrSlugTaken) {
				renderInvitationForm(s, w, r, user.Name, form, "Slug sudah digunakan, silakan pilih yang lain")
				return
			}
			s.GetLogger().Error().Err(err).Str("invitation", inv.ID).Msg("failed to update invitation")
			renderInvitationForm(s, w, r, user.Name, form, "Gagal menyimpan, silakan coba lagi")
			return
		}

		http.Redirect(w, r, "/invitation/"+inv.Slug, http.StatusSeeOther)
	}
}

// HandlePreviewInvitation renders an owned invitation regardless of its
// active flag
func HandlePreviewInvitation(s AuthServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/dashboard/invitations/preview/")
		inv, ok := getOwnedInvitation(s, w, r, id)
		if !ok {
			return
		}

		renderInvitationPage(s, w, r, inv, i18n.GetLanguageFromRequest(r))
	}
}

// HandleToggleActive flips public visibility; nothing is ever hard-deleted
func HandleToggleActive(s AuthServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form", http.StatusBadRequest)
			return
		}

		inv, ok := getOwnedInvitation(s, w, r, r.FormValue("id"))
		if !ok {
			return
		}

		if err := s.GetDB().SetInvitationActive(inv.ID, !inv.Active); err != nil {
			s.GetLogger().Error().Err(err).Str("invitation", inv.ID).Msg("failed to toggle active")
			http.Error(w, "Failed to update invitation", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

// HandleGuestList shows the RSVP entries and aggregates for an owned
// invitation
func HandleGuestList(s AuthServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/dashboard/invitations/guests/")
		inv, ok := getOwnedInvitation(s, w, r, id)
		if !ok {
			return
		}

		guests, err := s.GetDB().ListGuestsByInvitation(inv.ID)
		if err != nil {
			s.GetLogger().Error().Err(err).Str("invitation", inv.ID).Msg("failed to list guests")
			http.Error(w, "Failed to load guests", http.StatusInternalServerError)
			return
		}

		user := s.GetCurrentUser(r)
		stats := database.ComputeGuestStats(guests)
		lang := i18n.GetLanguageFromRequest(r)

		if err := templates.GuestList(user.Name, inv, guests, stats, lang).Render(r.Context(), w); err != nil {
			http.Error(w, "Failed to render page", http.StatusInternalServerError)
		}
	}
}

// HandleUpload accepts a multipart image and returns its public URL as JSON
func HandleUpload(s AuthServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		if err := r.ParseMultipartForm(10 << 20); err != nil {
			http.Error(w, "Invalid upload", http.StatusBadRequest)
			return
		}

		file, fileHeader, err := r.FormFile("image")
		if err != nil {
			http.Error(w, "Missing image", http.StatusBadRequest)
			return
		}
		defer file.Close()

		url, err := s.GetUploads().SaveImage(fileHeader)
		if err != nil {
			s.GetLogger().Error().Err(err).Msg("failed to save upload")
			http.Error(w, "Failed to save upload", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"url": url})
	}
}
