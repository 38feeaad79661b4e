// main.go
package main

import (
	"log"
	"time"

	"review-catalog/cmd"
	"review-catalog/internal/data/repository"
	"review-catalog/internal/wire"
	"review-catalog/pkg/database"
	"review-catalog/pkg/mailer"
	"review-catalog/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Outbound mail (confirmation codes)
	mail := mailer.New(config.Email, logger)

	// Signer for confirmation codes
	signer, err := utils.NewConfirmationSigner(
		config.Confirmation.Secret,
		time.Duration(config.Confirmation.ExpiryHours)*time.Hour,
	)
	if err != nil {
		logger.Fatal("Failed to init confirmation signer", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, mail, signer, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
