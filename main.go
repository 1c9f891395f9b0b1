// main.go
package main

import (
	"log"

	"github.com/Dejwwik/Top-movie-website/cmd"
	"github.com/Dejwwik/Top-movie-website/internal/catalog"
	"github.com/Dejwwik/Top-movie-website/internal/data/repository"
	"github.com/Dejwwik/Top-movie-website/internal/wire"
	"github.com/Dejwwik/Top-movie-website/pkg/database"
	"github.com/Dejwwik/Top-movie-website/pkg/utils"

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

	// Open the movie database (creates the schema on first run)
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database ready", zap.String("path", config.Database.Path))

	// Initialize repositories
	repos := repository.NewRepository(db, logger)

	// Catalog client
	cat, err := catalog.New(config.Catalog)
	if err != nil {
		logger.Fatal("Failed to init catalog client", zap.Error(err))
	}

	// Wire all dependencies
	app, err := wire.Wiring(repos, cat, config, logger)
	if err != nil {
		logger.Fatal("Failed to wire application", zap.Error(err))
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
