package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"salonbook/internal/amqp"
	"salonbook/internal/cache"
	"salonbook/internal/config"
	apphttp "salonbook/internal/http"
	applog "salonbook/internal/log"
	"salonbook/internal/services"
	"salonbook/internal/store"
	"salonbook/internal/store/memory"
	"salonbook/internal/store/sqlite"
)

func main() {
	// Load .env for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig()).WithComponent("server")
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	var entryStore store.EntryStore
	var closeStore func() error

	switch cfg.DataBackend {
	case "sqlite":
		repo, err := sqlite.NewRepository(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		entryStore = repo
		closeStore = repo.Close
		logger.Info("Initialized sqlite backend", "path", cfg.SQLiteDBPath)
	default:
		entryStore = memory.New()
		closeStore = func() error { return nil }
		logger.Info("Initialized memory backend")
	}
	defer closeStore()

	// Entry events are optional: without AMQP the API still works, the
	// worker's sweep handles mirroring.
	var events services.EventPublisher
	if cfg.AMQPURL != "" && cfg.DataBackend == "sqlite" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("AMQP unavailable, continuing without entry events", "error", err)
		} else {
			defer client.Close()
			events = client
			logger.Info("AMQP entry events enabled", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}

	entries := services.NewEntryService(entryStore, cache.NewEntryMirror(), events)

	// Seed the mirror before serving so the first dashboard render has data.
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := entries.Refresh(seedCtx); err != nil {
		logger.Error("Failed to seed entry mirror", "error", err)
		seedCancel()
		os.Exit(1)
	}
	seedCancel()

	srv := apphttp.NewServer(":"+cfg.Port, entries)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting salonbook server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
