// Package catalog serves the static seed catalog and its idempotent
// bootstrap at startup.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
	"github.com/ovelgard/StrideGarden_Go/internal/logger"
	"github.com/ovelgard/StrideGarden_Go/internal/repository"
)

// Service defines the interface for catalog operations
type Service interface {
	// ListSeeds returns all purchasable seed definitions.
	ListSeeds(ctx context.Context) ([]domain.Seed, error)
	// GetSeed returns one seed by ID; unavailable seeds behave as absent.
	GetSeed(ctx context.Context, seedID int) (*domain.Seed, error)
	// EnsureDefaultSeeds inserts any missing default definitions. Safe to
	// call repeatedly; runs the check and inserts in one transaction.
	EnsureDefaultSeeds(ctx context.Context) error
}

type service struct {
	repo  repository.Catalog
	cache *seedCache
}

// NewService creates a new catalog service
func NewService(repo repository.Catalog) Service {
	return &service{
		repo:  repo,
		cache: newSeedCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

func (s *service) ListSeeds(ctx context.Context) ([]domain.Seed, error) {
	seeds, err := s.repo.ListAvailableSeeds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list seeds: %w", err)
	}
	return seeds, nil
}

func (s *service) GetSeed(ctx context.Context, seedID int) (*domain.Seed, error) {
	if seed, ok := s.cache.Get(seedID); ok {
		return seed, nil
	}

	seed, err := s.repo.GetSeedByID(ctx, seedID)
	if err != nil {
		if errors.Is(err, domain.ErrSeedNotFound) {
			return nil, fmt.Errorf("%w: %d", domain.ErrSeedNotFound, seedID)
		}
		return nil, fmt.Errorf("failed to get seed: %w", err)
	}
	if !seed.IsAvailable {
		return nil, fmt.Errorf("%w: %d", domain.ErrSeedNotFound, seedID)
	}

	s.cache.Set(seed)
	return seed, nil
}

func (s *service) EnsureDefaultSeeds(ctx context.Context) error {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	inserted := 0
	for i := range DefaultSeeds {
		seed := DefaultSeeds[i]

		existing, err := tx.GetSeedByName(ctx, seed.Name)
		if err != nil && !errors.Is(err, domain.ErrSeedNotFound) {
			return fmt.Errorf("failed to check seed %q: %w", seed.Name, err)
		}
		if existing != nil {
			continue
		}

		if err := tx.InsertSeed(ctx, &seed); err != nil {
			return fmt.Errorf("failed to insert seed %q: %w", seed.Name, err)
		}
		inserted++
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.cache.Clear()

	if inserted > 0 {
		log.Info("Seed catalog bootstrapped", "inserted", inserted)
	} else {
		log.Debug("Seed catalog already populated")
	}
	return nil
}
