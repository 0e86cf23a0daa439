package handlers

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/undangin/undangin/internal/config"
	"github.com/undangin/undangin/internal/database"
	"github.com/undangin/undangin/internal/i18n"
	"github.com/undangin/undangin/internal/storage"
	"github.com/undangin/undangin/templates"
)

// Server interface defines the methods needed by handlers
type Server interface {
	GetDB() *database.DB
	GetConfig() *config.Config
	GetLogger() *zerolog.Logger
	GetUploads() *storage.Store
}

// AuthServer extends Server with session-backed user lookup
type AuthServer interface {
	Server
	GetCurrentUser(r *http.Request) *database.User
}

// HandleHome renders the landing page with the template catalog
func HandleHome(s AuthServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.GetLanguageFromRequest(r)

		// "/" on ServeMux is a catch-all; anything unrouted is a 404 here
		if r.URL.Path != "/" {
			renderNotFound(w, r, lang)
			return
		}

		loggedIn := s.GetCurrentUser(r) != nil
		if err := templates.Home(lang, loggedIn).Render(r.Context(), w); err != nil {
			http.Error(w, "Failed to render page", http.StatusInternalServerError)
		}
	}
}

// HandleInvitation dispatches /invitation/{slug}[/rsvp|/guest-search]
func HandleInvitation(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/invitation/"), "/")
		if rest == "" {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		parts := strings.SplitN(rest, "/", 2)
		slug := parts[0]
		action := ""
		if len(parts) == 2 {
			action = parts[1]
		}

		lang := i18n.GetLanguageFromRequest(r)

		// Public lookup: only active invitations resolve by slug
		inv, err := s.GetDB().GetInvitationBySlug(slug)
		if err != nil {
			renderNotFound(w, r, lang)
			return
		}

		switch action {
		case "":
			renderInvitationPage(s, w, r, inv, lang)
		case "rsvp":
			handleRSVPSubmit(s, w, r, inv, lang)
		case "guest-search":
			handleGuestSearch(s, w, r, inv, lang)
		default:
			renderNotFound(w, r, lang)
		}
	}
}

// renderInvitationPage selects the renderer for the invitation's template id
// and renders the page. Unknown template ids fall back to the default
// renderer; a broken page is never shown.
func renderInvitationPage(s Server, w http.ResponseWriter, r *http.Request, inv *database.Invitation, lang i18n.Language) {
	var music *database.Music
	if inv.MusicID.Valid {
		m, err := s.GetDB().GetMusicByID(inv.MusicID.String)
		if err != nil {
			// A deleted catalog entry renders as "no music"
			s.GetLogger().Warn().Err(err).Str("invitation", inv.ID).Msg("music reference did not resolve")
		} else {
			music = m
		}
	}

	view := templates.NewInvitationView(inv, music, lang)
	renderer := templates.Select(inv.TemplateID)
	if err := renderer(view).Render(r.Context(), w); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

func renderNotFound(w http.ResponseWriter, r *http.Request, lang i18n.Language) {
	w.WriteHeader(http.StatusNotFound)
	if err := templates.NotFound(lang).Render(r.Context(), w); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}
