package main

import (
	"context"
	"net/http"
	"os"

	"github.com/MassBabyGeek/FitDaily-backend/internal/api"
	"github.com/MassBabyGeek/FitDaily-backend/internal/config"
	"github.com/MassBabyGeek/FitDaily-backend/internal/database"
	"github.com/MassBabyGeek/FitDaily-backend/internal/handler"
	"github.com/MassBabyGeek/FitDaily-backend/internal/logger"
	"github.com/MassBabyGeek/FitDaily-backend/internal/middleware"
	"github.com/MassBabyGeek/FitDaily-backend/internal/service"
	"github.com/MassBabyGeek/FitDaily-backend/internal/services"
	"github.com/MassBabyGeek/FitDaily-backend/internal/store"
	"github.com/MassBabyGeek/FitDaily-backend/internal/store/postgresstore"
	"github.com/MassBabyGeek/FitDaily-backend/internal/store/sqlitestore"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Un seul backend de stockage, choisi à la configuration
	var st store.Store
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		pool, err := database.ConnectPostgres(cfg)
		if err != nil {
			logger.Error("Database connection failed: %v", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := database.Migrate(ctx, pool); err != nil {
			logger.Error("Migration failed: %v", err)
			os.Exit(1)
		}
		logger.Success("Connected to PostgreSQL")
		st = postgresstore.New(pool)

	case config.BackendSQLite:
		sqlStore, err := sqlitestore.Open(cfg.SQLitePath)
		if err != nil {
			logger.Error("Could not open SQLite database: %v", err)
			os.Exit(1)
		}
		logger.Success("Opened SQLite database %s", cfg.SQLitePath)
		st = sqlStore
	}

	// Challenges par défaut au premier démarrage
	if err := service.SeedChallenges(ctx, st); err != nil {
		logger.Error("Seeding failed: %v", err)
		os.Exit(1)
	}

	// Cloudinary est optionnel: sans configuration, l'upload renvoie 503
	var media *services.MediaService
	if cfg.CloudinaryCloudName != "" {
		media, err = services.NewMediaService(cfg)
		if err != nil {
			logger.Error("Cloudinary initialization failed: %v", err)
			os.Exit(1)
		}
		logger.Success("Cloudinary media upload enabled")
	} else {
		logger.Warning("Cloudinary not configured, media upload disabled")
	}

	// Initialize routes
	h := handler.New(st, media)
	router := api.SetupRouter(h)

	// Wrap router with CORS middleware
	handlerChain := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handlerChain); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
