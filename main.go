// main.go
package main

import (
	"context"
	"log"
	"time"

	"identity-service/cmd"
	"identity-service/internal/data/repository"
	"identity-service/internal/usecase"
	"identity-service/internal/wire"
	"identity-service/pkg/database"
	"identity-service/pkg/mailer"
	"identity-service/pkg/storage"
	"identity-service/pkg/token"
	"identity-service/pkg/utils"

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

	if config.JWT.Secret == utils.InsecureDefaultSecret {
		logger.Warn("JWT_SECRET not configured, using insecure default. Do not run this in production.")
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Token issuer
	issuer := token.NewIssuer(config.JWT.Secret, time.Duration(config.JWT.ExpiryHours)*time.Hour)

	// Detached notification worker
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifier := usecase.NewNotifier(mailer.NewSMTPMailer(config.Email), logger)
	notifier.Start(ctx)

	// OTP janitor enforces the deletion horizon independent of traffic
	usecase.StartOTPJanitor(ctx, repos.OTP,
		time.Duration(config.OTP.PurgeIntervalSecs)*time.Second, logger)

	// Photo object storage
	uploader, err := storage.NewS3Uploader(config.Storage)
	if err != nil {
		logger.Fatal("Failed to init object storage", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, issuer, notifier, uploader, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
