// Command extract runs the fallback extraction chain over one boarding-pass
// image and prints the resulting record as JSON.
// Usage: go run ./cmd/extract [-offline] [-no-stats] <image.jpg|image.png>
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"paxscan/internal/config"
	"paxscan/internal/domain"
	"paxscan/internal/extract/airports"
	"paxscan/internal/ocr"
	"paxscan/internal/pipeline"
	"paxscan/internal/port"
	"paxscan/internal/probe"
	"paxscan/internal/repository/postgres"
	"paxscan/internal/stats"
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
	offline := flag.Bool("offline", false, "skip network-bound strategies")
	noStats := flag.Bool("no-stats", false, "do not record attempts to the statistics store")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall extraction timeout")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: extract [-offline] [-no-stats] <image.jpg|image.png>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}

	resolver := airports.NewDefaultResolver()
	if cfg.Airports.File != "" {
		entries, err := airports.LoadXLSX(cfg.Airports.File)
		if err != nil {
			return fmt.Errorf("loading airports file: %w", err)
		}
		resolver = airports.NewResolver(entries)
	}

	engine := ocr.NewEngine(&cfg.OCR)
	strategies := []port.ExtractionStrategy{
		vision.NewStrategy(vision.NewClient(&cfg.Vision), cfg.Vision.CostPer1KTokens),
		ondevice.NewStrategy(ondevice.NewClient(&cfg.OnDevice), engine, resolver, cfg.OCR.MinConfidence),
		ocrmatch.NewStrategy(engine, resolver, cfg.OCR.MinConfidence,
			time.Duration(cfg.Pipeline.RetryPauseMS)*time.Millisecond),
	}

	var netProbe port.NetworkProbe = probe.NewDialProbe(cfg.Vision.Endpoint)
	if *offline {
		netProbe = probe.Always(false)
	}

	var recorder port.StatsRecorder = stats.NopRecorder{}
	if cfg.Pipeline.StatsEnabled && !*noStats {
		db, err := postgres.NewDB(&cfg.DB)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer func() { _ = db.Close() }()

		async := stats.NewAsyncRecorder(postgres.NewStatsRepo(db), cfg.Pipeline.StatsBuffer)
		defer async.Close()
		recorder = async
	}

	orchestrator := pipeline.New(strategies, netProbe, recorder)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	rec, err := orchestrator.Extract(ctx, domain.ImageInput{Bytes: data})
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
