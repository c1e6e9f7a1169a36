package main

import (
	"log/slog"
	"os"

	"github.com/hanseol-dev/lumina-backend/internal/imageproc"
	"github.com/hanseol-dev/lumina-backend/internal/router"
	"github.com/hanseol-dev/lumina-backend/internal/storage"
	"github.com/hanseol-dev/lumina-backend/pkg/config"
	"github.com/labstack/echo/v4"
)

const thumbnailQuality = 85

func main() {
	cfg := config.Load()
	config.InitLogger(cfg.Env)

	db, err := config.InitDB(cfg.PostgresConnStr)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer config.CloseDB(db)

	store, err := storage.NewS3Storage(storage.Config{
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})
	if err != nil {
		slog.Error("failed to initialize object storage", "error", err)
		os.Exit(1)
	}

	processor := imageproc.NewProcessor(thumbnailQuality)

	e := echo.New()
	e.HideBanner = true
	router.SetupMiddleware(e)
	if err := router.SetupRoutes(e, db, cfg, store, processor); err != nil {
		slog.Error("failed to set up routes", "error", err)
		os.Exit(1)
	}

	slog.Info("starting server", "port", cfg.Port, "env", cfg.Env)
	if err := e.Start(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
