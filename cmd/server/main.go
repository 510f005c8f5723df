package main

import (
	"fmt"
	"log"
	"time"

	"paxscan/internal/config"
	"paxscan/internal/extract/airports"
	"paxscan/internal/handler"
	"paxscan/internal/ocr"
	"paxscan/internal/pipeline"
	"paxscan/internal/port"
	"paxscan/internal/probe"
	"paxscan/internal/repository/postgres"
	"paxscan/internal/router"
	"paxscan/internal/service"
	"paxscan/internal/stats"
	s3storage "paxscan/internal/storage/s3"
	"paxscan/internal/strategy/ocrmatch"
	"paxscan/internal/strategy/ondevice"
	"paxscan/internal/strategy/vision"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// City/code table, optionally extended from an Excel override
	resolver := airports.NewDefaultResolver()
	if cfg.Airports.File != "" {
		entries, err := airports.LoadXLSX(cfg.Airports.File)
		if err != nil {
			return fmt.Errorf("failed to load airports file: %w", err)
		}
		resolver = airports.NewResolver(entries)
		log.Printf("loaded %d city/code entries from %s", len(entries), cfg.Airports.File)
	}

	// Collaborators
	engine := ocr.NewEngine(&cfg.OCR)
	visionClient := vision.NewClient(&cfg.Vision)
	onDeviceClient := ondevice.NewClient(&cfg.OnDevice)

	// Strategy chain, most capable first
	strategies := []port.ExtractionStrategy{
		vision.NewStrategy(visionClient, cfg.Vision.CostPer1KTokens),
		ondevice.NewStrategy(onDeviceClient, engine, resolver, cfg.OCR.MinConfidence),
		ocrmatch.NewStrategy(engine, resolver, cfg.OCR.MinConfidence,
			time.Duration(cfg.Pipeline.RetryPauseMS)*time.Millisecond),
	}

	// Usage-statistics sink
	statsRepo := postgres.NewStatsRepo(db)
	var recorder port.StatsRecorder = stats.NopRecorder{}
	if cfg.Pipeline.StatsEnabled {
		async := stats.NewAsyncRecorder(statsRepo, cfg.Pipeline.StatsBuffer)
		defer async.Close()
		recorder = async
	}

	orchestrator := pipeline.New(strategies, probe.NewDialProbe(cfg.Vision.Endpoint), recorder)

	// Optional object storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize services
	extractionSvc := service.NewExtractionService(orchestrator, s3Client, &cfg.S3)
	statsSvc := service.NewStatsService(statsRepo)

	// Initialize handlers
	extractH := handler.NewExtractHandler(extractionSvc)
	statsH := handler.NewStatsHandler(statsSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, extractH, statsH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
