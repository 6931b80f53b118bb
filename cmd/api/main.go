package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/arjun/hostelmate/internal/pkg/logger"
	"github.com/arjun/hostelmate/internal/server"
)

func main() {
	// A missing .env file is fine, configuration falls back to config.yaml and defaults
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, relying on environment and config file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
