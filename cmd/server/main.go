package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/undangin/undangin/internal/config"
	"github.com/undangin/undangin/internal/database"
	"github.com/undangin/undangin/internal/server"
	"github.com/undangin/undangin/internal/storage"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load .env file (ignore error if a file doesn't exist)
	// Use Overload to force to overwrite any existing environment variables
	if err := godotenv.Overload(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Initialize database
	db, err := database.New(context.Background(), cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer func(db *database.DB) {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}(db)

	// Run migrations
	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Prepare the upload store
	uploads, err := storage.New(cfg.UploadDir, cfg.BaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare upload dir")
	}

	// Create and start the server
	srv := server.New(cfg, db, uploads, log)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
