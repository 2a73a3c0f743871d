// Package main provides the catalogd command that serves the product catalog
// over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clothinghub/internal/catalog"
	"clothinghub/internal/ingest/store"
	"clothinghub/internal/logger"
	"clothinghub/internal/server"
)

func main() {
	port := flag.String("port", "8080", "HTTP listen port")
	useSnapshot := flag.Bool("use-snapshot", false, "Serve the ingested snapshot instead of seed feeds")
	snapshotDir := flag.String("snapshot-dir", store.DefaultSnapshotDir, "Ingested snapshot directory")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")

	flag.Parse()

	log := logger.NewLogger(*logLevel)

	cat, err := catalog.Load(catalog.Options{
		UseSnapshot: *useSnapshot,
		SnapshotDir: *snapshotDir,
		Logger:      log,
	})
	if err != nil {
		log.Error(fmt.Sprintf("Failed to load catalog: %v", err))
		os.Exit(1)
	}

	srv := server.NewServer(*port, cat, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("catalog server listening", "addr", srv.Addr, "products", cat.Len())

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(fmt.Sprintf("Server failed: %v", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(fmt.Sprintf("Shutdown failed: %v", err))
		os.Exit(1)
	}
}
