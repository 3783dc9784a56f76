// Command main is the entry point for the mojicode local daemon.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mojicode/internal/assetcache"
	"mojicode/internal/config"
	"mojicode/internal/database"
	"mojicode/internal/gateway"
	"mojicode/internal/observability"
	"mojicode/internal/seed"
	"mojicode/internal/syncq"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The database handle is opened once here and closed at shutdown; every
	// component borrows it for the life of the process.
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			observability.GlobalLogger.Error("Database close failed", slog.String("error", err.Error()))
		}
	}()

	if cfg.SeedDevData {
		if err := seed.Dev(context.Background(), db); err != nil {
			log.Fatalf("Failed to seed development data: %v", err)
		}
	}

	rdb := assetcache.Connect(cfg.RedisURL)
	gw := gateway.New(cfg, db, rdb)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 60*time.Second)
	if manifest := cfg.ManifestURLs(); len(manifest) > 0 {
		if err := gw.Cache().Install(startCtx, manifest); err != nil {
			observability.GlobalLogger.Warn("Asset cache install failed, serving without pre-populated cache",
				slog.String("error", err.Error()),
			)
		}
	}
	if err := gw.Cache().Activate(startCtx); err != nil {
		observability.GlobalLogger.Warn("Asset cache activation failed",
			slog.String("error", err.Error()),
		)
	}
	cancelStart()

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go gw.Replayer().Run(runCtx)

	// An initial signal drains anything queued before the last shutdown.
	gw.Replayer().Signal(syncq.SyncTag)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		observability.GlobalLogger.Info("Shutting down")
		cancel()

		ctx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancelShutdown()
		if err := gw.Shutdown(ctx); err != nil {
			observability.GlobalLogger.Error("Gateway shutdown error", slog.String("error", err.Error()))
		}
	}()

	observability.GlobalLogger.Info("mojicode listening", slog.String("port", cfg.Port))
	if err := gw.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
