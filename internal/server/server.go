package server

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"
	"github.com/undangin/undangin/internal/config"
	"github.com/undangin/undangin/internal/database"
	"github.com/undangin/undangin/internal/server/handlers"
	"github.com/undangin/undangin/internal/storage"
)

type Server struct {
	config       *config.Config
	db           *database.DB
	uploads      *storage.Store
	sessionStore *sessions.CookieStore
	router       *http.ServeMux
	log          zerolog.Logger
}

// GetDB implements handlers.Server interface
func (s *Server) GetDB() *database.DB {
	return s.db
}

// GetConfig implements handlers.Server interface
func (s *Server) GetConfig() *config.Config {
	return s.config
}

// GetLogger implements handlers.Server interface
func (s *Server) GetLogger() *zerolog.Logger {
	return &s.log
}

// GetUploads implements handlers.Server interface
func (s *Server) GetUploads() *storage.Store {
	return s.uploads
}

// GetCurrentUser implements handlers.AuthServer interface. Returns nil when
// the request carries no valid login session.
func (s *Server) GetCurrentUser(r *http.Request) *database.User {
	session, _ := s.sessionStore.Get(r, "auth-session")
	userID, _ := session.Values["user_id"].(string)
	if userID == "" {
		return nil
	}

	user, err := s.db.GetUserByID(userID)
	if err != nil {
		return nil
	}
	return user
}

func New(cfg *config.Config, db *database.DB, uploads *storage.Store, logger zerolog.Logger) *Server {
	s := &Server{
		config:       cfg,
		db:           db,
		uploads:      uploads,
		sessionStore: sessions.NewCookieStore([]byte(cfg.SessionSecret)),
		router:       http.NewServeMux(),
		log:          logger.With().Str("component", "server").Logger(),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Static files and uploads
	fs := http.FileServer(http.Dir("./static"))
	s.router.Handle("/static/", http.StripPrefix("/static/", fs))
	uploadsFS := http.FileServer(http.Dir(s.uploads.Dir()))
	s.router.Handle("/uploads/", http.StripPrefix("/uploads/", uploadsFS))

	// Public routes
	s.router.HandleFunc("/", handlers.HandleHome(s))
	s.router.HandleFunc("/invitation/", handlers.HandleInvitation(s))

	// Auth routes
	s.router.HandleFunc("/auth/google", s.handleGoogleLogin)
	s.router.HandleFunc("/auth/google/callback", s.handleGoogleCallback)
	s.router.HandleFunc("/auth/logout", s.handleLogout)

	// Owner dashboard (protected)
	s.router.HandleFunc("/dashboard", s.requireAuth(handlers.HandleDashboard(s)))
	s.router.HandleFunc("/dashboard/invitations/new", s.requireAuth(handlers.HandleNewInvitation(s)))
	s.router.HandleFunc("/dashboard/invitations/create", s.requireAuth(handlers.HandleCreateInvitation(s)))
	s.router.HandleFunc("/dashboard/invitations/edit/", s.requireAuth(handlers.HandleEditInvitation(s)))
	s.router.HandleFunc("/dashboard/invitations/update/", s.requireAuth(handlers.HandleUpdateInvitation(s)))
	s.router.HandleFunc("/dashboard/invitations/preview/", s.requireAuth(handlers.HandlePreviewInvitation(s)))
	s.router.HandleFunc("/dashboard/invitations/toggle-active", s.requireAuth(handlers.HandleToggleActive(s)))
	s.router.HandleFunc("/dashboard/invitations/guests/export/", s.requireAuth(handlers.HandleExportGuestsCSV(s)))
	s.router.HandleFunc("/dashboard/invitations/guests/", s.requireAuth(handlers.HandleGuestList(s)))
	s.router.HandleFunc("/dashboard/upload", s.requireAuth(handlers.HandleUpload(s)))

	// Admin routes (protected by email whitelist)
	s.router.HandleFunc("/admin", s.requireAdmin(handlers.HandleAdminDashboard(s)))
	s.router.HandleFunc("/admin/music", s.requireAdmin(handlers.HandleAdminMusic(s)))
	s.router.HandleFunc("/admin/music/create", s.requireAdmin(handlers.HandleAdminCreateMusic(s)))
	s.router.HandleFunc("/admin/music/update", s.requireAdmin(handlers.HandleAdminUpdateMusic(s)))
	s.router.HandleFunc("/admin/music/delete", s.requireAdmin(handlers.HandleAdminDeleteMusic(s)))
}

func (s *Server) Start(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

// requireAuth is a middleware that checks if a user is logged in
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.GetCurrentUser(r) == nil {
			http.Redirect(w, r, "/auth/google", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// requireAdmin additionally checks the email whitelist; re-checked per route
func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := s.GetCurrentUser(r)
		if user == nil {
			http.Redirect(w, r, "/auth/google", http.StatusSeeOther)
			return
		}
		if !s.isAdminEmail(user.Email) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (s *Server) isAdminEmail(email string) bool {
	for _, adminEmail := range s.config.AdminEmails {
		if email == adminEmail {
			return true
		}
	}
	return false
}
