package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ovelgard/StrideGarden_Go/internal/activity"
	"github.com/ovelgard/StrideGarden_Go/internal/catalog"
	"github.com/ovelgard/StrideGarden_Go/internal/config"
	"github.com/ovelgard/StrideGarden_Go/internal/database"
	"github.com/ovelgard/StrideGarden_Go/internal/database/postgres"
	"github.com/ovelgard/StrideGarden_Go/internal/garden"
	"github.com/ovelgard/StrideGarden_Go/internal/handler"
	"github.com/ovelgard/StrideGarden_Go/internal/logger"
	"github.com/ovelgard/StrideGarden_Go/internal/nursery"
	"github.com/ovelgard/StrideGarden_Go/internal/server"
	"github.com/ovelgard/StrideGarden_Go/internal/stats"
	"github.com/ovelgard/StrideGarden_Go/internal/wallet"
)

// @title StrideGarden API
// @version 1.0
// @description Running gamification backend: runs earn coins and grow a mystical garden.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, cfg.GetDBConnString()); err != nil {
		logger.Error("Failed to apply migrations", "error", err)
		os.Exit(1)
	}

	handler.InitValidator()

	activityRepo := postgres.NewActivityRepository(pool)
	walletRepo := postgres.NewWalletRepository(pool)
	gardenRepo := postgres.NewGardenRepository(pool)
	nurseryRepo := postgres.NewNurseryRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	catalogService := catalog.NewService(catalogRepo)
	if err := catalogService.EnsureDefaultSeeds(ctx); err != nil {
		logger.Error("Failed to seed catalog", "error", err)
		os.Exit(1)
	}

	activityService := activity.NewService(activityRepo)
	walletService := wallet.NewService(walletRepo)
	gardenService := garden.NewService(gardenRepo)
	nurseryService := nursery.NewService(nurseryRepo, catalogService)
	statsService := stats.NewService(statsRepo, walletRepo, gardenRepo)

	trustedProxies := splitList(os.Getenv("TRUSTED_PROXIES"))

	srv := server.NewServer(cfg.Port, cfg.APIKey, trustedProxies, pool,
		activityService, walletService, catalogService, nurseryService, gardenService, statsService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		logger.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
