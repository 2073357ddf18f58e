package main

import (
	"os"

	"github.com/mokoena/studenthub/internal/pkg/logger"
	"github.com/mokoena/studenthub/internal/server"
)

// @title StudentHub API
// @version 1.0
// @description Student records API with live analytics and change notifications

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3001
// @BasePath /api
// @schemes http

func main() {
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
}
