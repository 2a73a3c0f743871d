// Package main provides the ingest command that pulls every configured feed
// and writes the catalog snapshot.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"clothinghub/internal/config"
	"clothinghub/internal/ingest/run"
	"clothinghub/internal/ingest/source"
	"clothinghub/internal/ingest/store"
	"clothinghub/internal/logger"
	"clothinghub/internal/report"
)

func main() {
	configPath := flag.String("config", "", "Path to the source-list config file (JSON or YAML)")
	feedPath := flag.String("feed", "", "Path to a single local JSON feed (used when no config exists)")
	outDir := flag.String("out", store.DefaultSnapshotDir, "Snapshot output directory")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")

	flag.Parse()

	log := logger.NewLogger(*logLevel)

	sources, err := buildSources(*configPath, *feedPath)
	if err != nil {
		log.Error(fmt.Sprintf("Failed to set up sources: %v", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := run.NewRunner(run.Options{
		Sources: sources,
		Store:   store.NewFileStore(*outDir),
		Logger:  log,
	})

	summary, err := runner.Run(ctx)
	if summary != nil {
		fmt.Print(report.RenderSummary(summary))
	}

	if err != nil {
		log.Error(fmt.Sprintf("Ingestion failed: %v", err))
		os.Exit(1)
	}

	if summary.ErrorCount() > 0 {
		log.Warn(fmt.Sprintf("Ingestion finished with %d errors", summary.ErrorCount()))
		os.Exit(1)
	}
}

// buildSources resolves the feed connections: an explicit config file wins,
// then the default config path, then a single local JSON feed.
func buildSources(configPath, feedPath string) ([]source.Source, error) {
	if configPath == "" {
		if _, err := os.Stat(config.DefaultConfigPath); err == nil {
			configPath = config.DefaultConfigPath
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to check default config: %w", err)
		}
	}

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}

		return source.BuildFromConfig(cfg)
	}

	return []source.Source{
		source.NewLocalJSON(source.LocalJSONOptions{FilePath: feedPath}),
	}, nil
}
