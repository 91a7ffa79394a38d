package main

import (
	"os"

	"github.com/tutionapp/backend/internal/pkg/logger"
	"github.com/tutionapp/backend/internal/server"
)

// @title Tution App API
// @version 1.0
// @description Admin backend for a tuition management application: subjects, students, faculties and their mappings.

// @contact.name API Support
// @contact.email support@tutionapp.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
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
