package handlers

import (
	"net/http"
	"strings"

	"github.com/undangin/undangin/internal/database"
	"github.com/undangin/undangin/templates"
)

// HandleAdminDashboard renders the platform-wide counts and template
// histogram. Every load is a full recompute; this is simple reporting, not
// an analytics pipeline.
func HandleAdminDashboard(s AuthServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := s.GetCurrentUser(r)

		stats, err := s.GetDB().GetAdminStats()
		if err != nil {
			s.GetLogger().Error().Err(err).Msg("failed to load admin stats")
			http.Error(w, "Failed to load stats", http.StatusInternalServerError)
			return
		}

		histogram, err := s.GetDB().GetTemplateHistogram()
		if err != nil {
			s.GetLogger().Error().Err(err).Msg("failed to load template histogram")
			http.Error(w, "Failed to load stats", http.StatusInternalServerError)
			return
		}

		if err := templates.AdminDashboard(user.Name, stats, histogram).Render(r.Context(), w); err != nil {
			http.Error(w, "Failed to render page", http.StatusInternalServerError)
		}
	}
}

// HandleAdminMusic lists the whole music catalog, inactive entries included
func HandleAdminMusic(s AuthServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderAdminMusic(s, w, r, "")
	}
}

func renderAdminMusic(s AuthServer, w http.ResponseWriter, r *http.Request, errorMsg string) {
	user := s.GetCurrentUser(r)

	list, err := s.GetDB().ListMusic(false)
	if err != nil {
		s.GetLogger().Error().Err(err).Msg("failed to list music")
		http.Error(w, "Failed to load music", http.StatusInternalServerError)
		return
	}

	if err := templates.AdminMusic(user.Name, list, errorMsg).Render(r.Context(), w); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// parseMusicForm validates the shared create/update music fields
func parseMusicForm(r *http.Request) (*database.Music, bool) {
	if err := r.ParseForm(); err != nil {
		return nil, false
	}

	title := strings.TrimSpace(r.FormValue("title"))
	url := strings.TrimSpace(r.FormValue("url"))
	if title == "" || url == "" {
		return nil, false
	}

	return &database.Music{
		Title:  title,
		Artist: database.NullString(r.FormValue("artist")),
		URL:    url,
		Active: r.FormValue("active") == "true",
	}, true
}

func HandleAdminCreateMusic(s AuthServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Redirect(w, r, "/admin/music", http.StatusSeeOther)
			return
		}

		m, ok := parseMusicForm(r)
		if !ok {
			renderAdminMusic(s, w, r, "Judul dan URL wajib diisi")
			return
		}

		if err := s.GetDB().CreateMusic(m); err != nil {
			s.GetLogger().Error().Err(err).Msg("failed to create music")
			renderAdminMusic(s, w, r, "Gagal menyimpan, silakan coba lagi")
			return
		}

		http.Redirect(w, r, "/admin/music", http.StatusSeeOther)
	}
}

func HandleAdminUpdateMusic(s AuthServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Redirect(w, r, "/admin/music", http.StatusSeeOther)
			return
		}

		m, ok := parseMusicForm(r)
		if !ok {
			renderAdminMusic(s, w, r, "Judul dan URL wajib diisi")
			return
		}
		m.ID = strings.TrimSpace(r.FormValue("id"))
		if m.ID == "" {
			renderAdminMusic(s, w, r, "Entri tidak ditemukan")
			return
		}

		if err := s.GetDB().UpdateMusic(m); err != nil {
			s.GetLogger().Error().Err(err).Str("music", m.ID).Msg("failed to update music")
			renderAdminMusic(s, w, r, "Gagal menyimpan, silakan coba lagi")
			return
		}

		http.Redirect(w, r, "/admin/music", http.StatusSeeOther)
	}
}

func HandleAdminDeleteMusic(s AuthServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Redirect(w, r, "/admin/music", http.StatusSeeOther)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form", http.StatusBadRequest)
			return
		}

		id := strings.TrimSpace(r.FormValue("id"))
		if id == "" {
			renderAdminMusic(s, w, r, "Entri tidak ditemukan")
			return
		}

		if err := s.GetDB().DeleteMusic(id); err != nil {
			s.GetLogger().Error().Err(err).Str("music", id).Msg("failed to delete music")
			renderAdminMusic(s, w, r, "Gagal menghapus, silakan coba lagi")
			return
		}

		http.Redirect(w, r, "/admin/music", http.StatusSeeOther)
	}
}
