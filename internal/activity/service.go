// Package activity implements run logging: one transaction that records the
// run, credits the wallet, grows the garden, and waters every plant in it.
package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
	"github.com/ovelgard/StrideGarden_Go/internal/garden"
	"github.com/ovelgard/StrideGarden_Go/internal/growth"
	"github.com/ovelgard/StrideGarden_Go/internal/logger"
	"github.com/ovelgard/StrideGarden_Go/internal/metrics"
	"github.com/ovelgard/StrideGarden_Go/internal/repository"
	"github.com/ovelgard/StrideGarden_Go/internal/reward"
)

// LogRunResult is returned after a run is logged.
type LogRunResult struct {
	Run           *domain.Run `json:"run"`
	CoinsEarned   int         `json:"coins_earned"`
	TotalCoins    int         `json:"total_coins"`
	GardenLevelUp bool        `json:"garden_level_up"`
}

// RunPage is one page of run history, newest first.
type RunPage struct {
	Runs    []domain.Run `json:"runs"`
	Page    int          `json:"page"`
	PerPage int          `json:"per_page"`
	Total   int          `json:"total"`
	Pages   int          `json:"pages"`
}

// Service defines the interface for activity operations
type Service interface {
	LogRun(ctx context.Context, userID string, distanceKm float64, durationMinutes int, intensityToken string) (*LogRunResult, error)
	ListRuns(ctx context.Context, userID string, page, perPage int) (*RunPage, error)
}

type service struct {
	repo repository.Activity
	now  func() time.Time
}

// NewService creates a new activity service
func NewService(repo repository.Activity) Service {
	return &service{repo: repo, now: time.Now}
}

// validateRun checks run inputs against the gameplay bounds.
func validateRun(distanceKm float64, durationMinutes int, intensityToken string) (domain.Intensity, error) {
	if distanceKm <= 0 || distanceKm > domain.MaxRunDistanceKm {
		return "", fmt.Errorf("%w: %.2f", domain.ErrInvalidDistance, distanceKm)
	}
	if durationMinutes <= 0 || durationMinutes > domain.MaxRunDurationMinutes {
		return "", fmt.Errorf("%w: %d", domain.ErrInvalidDuration, durationMinutes)
	}
	return domain.ParseIntensity(intensityToken)
}

// LogRun validates the run, then commits the run row, coin credit, garden XP
// and plant watering as one unit. Coins are computed once here and frozen on
// the run record.
func (s *service) LogRun(ctx context.Context, userID string, distanceKm float64, durationMinutes int, intensityToken string) (*LogRunResult, error) {
	log := logger.FromContext(ctx)
	log.Info("LogRun called", "user_id", userID, "distance_km", distanceKm, "duration_minutes", durationMinutes, "intensity", intensityToken)

	intensity, err := validateRun(distanceKm, durationMinutes, intensityToken)
	if err != nil {
		return nil, err
	}

	now := s.now()
	coins := reward.CoinsForRun(distanceKm, intensity)
	xp := reward.ExperienceForRun(distanceKm)

	run := &domain.Run{
		UserID:          userID,
		DistanceKm:      distanceKm,
		DurationMinutes: durationMinutes,
		Intensity:       intensity,
		PaceMinPerKm:    float64(durationMinutes) / distanceKm,
		CoinsEarned:     coins,
		CreatedAt:       now,
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.InsertRun(ctx, run); err != nil {
		log.Error("Failed to insert run", "error", err)
		return nil, fmt.Errorf("failed to insert run: %w", err)
	}

	wallet, err := s.creditWallet(ctx, tx, userID, coins, now)
	if err != nil {
		return nil, err
	}

	leveledUp, err := s.growGarden(ctx, tx, userID, xp, distanceKm, intensity, now)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.RunsLogged.WithLabelValues(intensity.String()).Inc()
	metrics.CoinsEarned.Add(float64(coins))

	log.Info("Run logged", "user_id", userID, "run_id", run.ID, "coins_earned", coins, "xp", xp, "leveled_up", leveledUp)

	return &LogRunResult{
		Run:           run,
		CoinsEarned:   coins,
		TotalCoins:    wallet.Balance,
		GardenLevelUp: leveledUp,
	}, nil
}

// creditWallet locks the wallet row (creating it on first earn) and applies
// the coin credit.
func (s *service) creditWallet(ctx context.Context, tx repository.ActivityTx, userID string, coins int, now time.Time) (*domain.Wallet, error) {
	log := logger.FromContext(ctx)

	wallet, err := tx.GetWalletForUpdate(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrWalletNotFound) {
			log.Error("Failed to get wallet", "error", err, "user_id", userID)
			return nil, fmt.Errorf("failed to get wallet: %w", err)
		}
		wallet = &domain.Wallet{UserID: userID, UpdatedAt: now}
		if err := tx.CreateWallet(ctx, wallet); err != nil {
			return nil, fmt.Errorf("failed to create wallet: %w", err)
		}
		// A concurrent first run may have won the insert; lock whichever
		// row is committed before crediting it.
		wallet, err = tx.GetWalletForUpdate(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to get wallet: %w", err)
		}
	}

	wallet.AddCoins(coins, now)
	if err := tx.SaveWallet(ctx, wallet); err != nil {
		log.Error("Failed to save wallet", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to save wallet: %w", err)
	}
	return wallet, nil
}

// growGarden locks the garden (creating a default one on first run), grants
// XP, and waters every plant with the run's stimulus.
func (s *service) growGarden(ctx context.Context, tx repository.ActivityTx, userID string, xp int, distanceKm float64, intensity domain.Intensity, now time.Time) (bool, error) {
	log := logger.FromContext(ctx)

	g, err := tx.GetGardenForUpdate(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrGardenNotFound) {
			log.Error("Failed to get garden", "error", err, "user_id", userID)
			return false, fmt.Errorf("failed to get garden: %w", err)
		}
		g = garden.NewGarden(userID)
		g.CreatedAt = now
		if err := tx.CreateGarden(ctx, g); err != nil {
			return false, fmt.Errorf("failed to create garden: %w", err)
		}
		g, err = tx.GetGardenForUpdate(ctx, userID)
		if err != nil {
			return false, fmt.Errorf("failed to get garden: %w", err)
		}
	}

	leveledUp := garden.ApplyExperience(g, xp)
	if err := tx.SaveGarden(ctx, g); err != nil {
		log.Error("Failed to save garden", "error", err, "garden_id", g.ID)
		return false, fmt.Errorf("failed to save garden: %w", err)
	}

	plants, err := tx.ListPlantsForUpdate(ctx, g.ID)
	if err != nil {
		log.Error("Failed to list plants", "error", err, "garden_id", g.ID)
		return false, fmt.Errorf("failed to list plants: %w", err)
	}

	for i := range plants {
		growth.Water(&plants[i], distanceKm, intensity, now)
		if err := tx.SavePlantGrowth(ctx, &plants[i]); err != nil {
			log.Error("Failed to water plant", "error", err, "plant_id", plants[i].ID)
			return false, fmt.Errorf("failed to water plant: %w", err)
		}
	}

	return leveledUp, nil
}

// ListRuns returns the user's run history, newest first.
func (s *service) ListRuns(ctx context.Context, userID string, page, perPage int) (*RunPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = domain.DefaultRunsPerPage
	}
	if perPage > domain.MaxRunsPerPage {
		perPage = domain.MaxRunsPerPage
	}

	total, err := s.repo.CountRuns(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}

	runs, err := s.repo.ListRuns(ctx, userID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	pages := (total + perPage - 1) / perPage
	return &RunPage{Runs: runs, Page: page, PerPage: perPage, Total: total, Pages: pages}, nil
}
