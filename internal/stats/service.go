// Package stats computes derived user aggregates. Nothing here is stored;
// every read recomputes from runs, the wallet and the garden.
package stats

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
	"github.com/ovelgard/StrideGarden_Go/internal/logger"
	"github.com/ovelgard/StrideGarden_Go/internal/repository"
)

// Service defines the interface for stats operations
type Service interface {
	GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error)
}

type service struct {
	repo       repository.Stats
	walletRepo repository.Wallet
	gardenRepo repository.Garden
}

// NewService creates a new stats service
func NewService(repo repository.Stats, walletRepo repository.Wallet, gardenRepo repository.Garden) Service {
	return &service{
		repo:       repo,
		walletRepo: walletRepo,
		gardenRepo: gardenRepo,
	}
}

func (s *service) GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	log := logger.FromContext(ctx)

	totals, err := s.repo.GetRunTotals(ctx, userID)
	if err != nil {
		log.Error("Failed to get run totals", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get run totals: %w", err)
	}

	running := domain.RunningStats{
		TotalRuns:        totals.TotalRuns,
		TotalDistanceKm:  round2(totals.TotalDistanceKm),
		TotalDurationMin: totals.TotalDurationMin,
	}
	if totals.TotalRuns > 0 {
		running.AverageDistanceKm = round2(totals.TotalDistanceKm / float64(totals.TotalRuns))
	}
	if totals.TotalDistanceKm > 0 {
		running.AveragePaceMinPerKm = round2(float64(totals.TotalDurationMin) / totals.TotalDistanceKm)
	}

	stats := &domain.UserStats{
		UserID:  userID,
		Running: running,
		Garden: domain.GardenStats{
			Level:         1,
			PlantsByStage: map[domain.PlantStage]int{},
		},
	}

	w, err := s.walletRepo.GetWallet(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrWalletNotFound) {
		log.Error("Failed to get wallet", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	stats.Wallet = w

	g, err := s.gardenRepo.GetGardenByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrGardenNotFound) {
			return stats, nil
		}
		log.Error("Failed to get garden", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get garden: %w", err)
	}

	byStage, err := s.repo.CountPlantsByStage(ctx, g.ID)
	if err != nil {
		log.Error("Failed to count plants", "error", err, "garden_id", g.ID)
		return nil, fmt.Errorf("failed to count plants: %w", err)
	}

	total := 0
	for _, count := range byStage {
		total += count
	}

	stats.Garden = domain.GardenStats{
		Level:            g.Level,
		ExperiencePoints: g.ExperiencePoints,
		TotalPlants:      total,
		PlantsByStage:    byStage,
	}
	return stats, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
