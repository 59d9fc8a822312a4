package main

import (
	"os"

	"github.com/arjun/examhall/internal/pkg/logger"
	"github.com/arjun/examhall/internal/server"
)

// @title ExamHall API
// @version 1.0
// @description API for CIA exam hall seating and invigilator duty allocation
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@examhall.app

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

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
