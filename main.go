package main

import (
	"flag"
	"log"

	"rudasumbwa_backend/internal/app"
	"rudasumbwa_backend/internal/config"
	"rudasumbwa_backend/pkg/database"
	"rudasumbwa_backend/pkg/logger"

	"go.uber.org/zap"
)

// @title RUDASUMBWA School API
// @version 1.0
// @description Backend for the RUDASUMBWA school platform: quizzes and grading, notes, clubs, announcements and an AI study tutor.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	migrate := flag.Bool("migrate", false, "run database migration before serving")
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg.ForceMigrate = *migrate
	cfg.MigrateOnly = *migrateOnly

	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	if cfg.MigrateOnly {
		if _, err := database.InitDB(&cfg.Database); err != nil {
			logger.Log.Fatal("migration failed", zap.Error(err))
		}
		logger.Log.Info("migration completed")
		return
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		logger.Log.Fatal("failed to initialize application", zap.Error(err))
	}

	if err := application.Run(); err != nil {
		logger.Log.Fatal("server error", zap.Error(err))
	}
}
