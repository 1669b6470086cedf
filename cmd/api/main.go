package main

import (
	"os"

	"github.com/SpecialAgentB3/benwilcox-dev/internal/pkg/logger"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/server"
)

// @title Course Catalog History API
// @version 1.0
// @description Historical course catalog browser: fuzzy search, listing selection, offering aggregation and shareable sessions.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
