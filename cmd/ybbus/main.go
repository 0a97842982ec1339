package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"ybbus/internal/config"
	"ybbus/internal/dataset"
	"ybbus/internal/handler"
	"ybbus/internal/server"
	"ybbus/internal/storage"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Load()

	// CLI flags
	importOnly := flag.Bool("import", false, "Import the network dataset, then exit")
	flag.IntVar(&cfg.Port, "port", cfg.Port, "HTTP server port")
	flag.StringVar(&cfg.DatasetPath, "dataset", cfg.DatasetPath, "Path to the network YAML file")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the SQLite database")
	flag.Parse()
	cfg.ImportOnly = *importOnly

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := storage.Open(cfg.DBPath, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Import when asked, or on first run against an empty store.
	if cfg.ImportOnly || !db.HasData(ctx) {
		net, err := dataset.Load(cfg.DatasetPath)
		if err != nil {
			logger.Error("failed to load dataset", "path", cfg.DatasetPath, "error", err)
			os.Exit(1)
		}
		if err := dataset.NewImporter(db, logger).Import(ctx, net); err != nil {
			logger.Error("dataset import failed", "error", err)
			os.Exit(1)
		}
		if cfg.ImportOnly {
			logger.Info("import complete")
			return
		}
	}

	h := handler.New(cfg, logger)
	srv := server.New(cfg, h, logger)

	// The snapshot read is the one asynchronous load; the server
	// answers 503 until it lands.
	go func() {
		snap, err := db.LoadSnapshot(ctx)
		if err != nil {
			if errors.Is(err, storage.ErrNoData) {
				logger.Error("store is empty, run with -import first")
			} else {
				logger.Error("failed to load snapshot", "error", err)
			}
			os.Exit(1)
		}
		h.SetSnapshot(snap)
		srv.SetReady()
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down")
		cancel()
		os.Exit(0)
	}()

	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
