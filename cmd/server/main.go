package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/makeorbreakshop/video-scripter-sub010/internal/config"
	"github.com/makeorbreakshop/video-scripter-sub010/internal/db"
	"github.com/makeorbreakshop/video-scripter-sub010/internal/handler"
	"github.com/makeorbreakshop/video-scripter-sub010/internal/middleware"
	"github.com/makeorbreakshop/video-scripter-sub010/internal/repository"
	"github.com/makeorbreakshop/video-scripter-sub010/internal/router"
	"github.com/makeorbreakshop/video-scripter-sub010/internal/service"
	"github.com/makeorbreakshop/video-scripter-sub010/internal/youtube"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "competitor-import")
	logger := middleware.Logger

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	if cfg.YouTubeAPIKey == "" {
		log.Fatal("YOUTUBE_API_KEY is required")
	}
	catalog, err := youtube.NewClient(ctx, cfg.YouTubeAPIKey)
	if err != nil {
		log.Fatalf("failed to create YouTube client: %v", err)
	}

	videoRepo := repository.NewVideoRepo(pool)
	statusRepo := repository.NewImportStatusRepo(pool)

	var delegate service.Delegate
	if cfg.ImportServiceURL != "" {
		delegate = service.NewDelegateClient(cfg.ImportServiceURL)
		logger.Info().Str("url", cfg.ImportServiceURL).Msg("unified import delegate configured")
	}

	sideEffects := service.NewDispatcher(cfg.SearchRefreshURL, cfg.EmbeddingServiceURL, logger)

	importSvc := service.NewImportService(catalog, videoRepo, statusRepo, delegate, sideEffects, logger)

	jobStore := service.NewJobStore(cfg.RedisURL)
	defer jobStore.Close()
	jobSvc := service.NewJobService(jobStore, importSvc.RunDirect, logger)
	jobSvc.OnFinished(handler.RecordImportOutcome)
	importSvc.SetJobRunner(jobSvc)

	if cfg.RefreshInterval > 0 {
		worker := service.NewRefreshWorker(statusRepo, importSvc, cfg.RefreshInterval, cfg.RefreshMaxAge)
		go worker.Start(ctx)
	}

	handler.InitMetrics(pool)

	app := fiber.New(fiber.Config{
		AppName:      "Competitor Import API",
		ServerHeader: "competitor-import",
	})

	router.Setup(app, &router.Handlers{
		Import: handler.NewImportHandler(importSvc, jobSvc),
		Status: handler.NewStatusHandler(statusRepo, videoRepo),
		Health: handler.NewHealthHandler(pool, jobStore.Client()),
	}, cfg.CORSOrigins)

	log.Printf("competitor import backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
