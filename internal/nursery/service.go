// Package nursery implements the seed economy workflow: buying seeds into
// inventory, planting them into garden cells, harvesting blooming plants
// into the flower collection, and abandoning plants.
package nursery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ovelgard/StrideGarden_Go/internal/catalog"
	"github.com/ovelgard/StrideGarden_Go/internal/domain"
	"github.com/ovelgard/StrideGarden_Go/internal/logger"
	"github.com/ovelgard/StrideGarden_Go/internal/metrics"
	"github.com/ovelgard/StrideGarden_Go/internal/repository"
)

// MaxPlantNameLength bounds custom plant names, matching the column width.
const MaxPlantNameLength = 100

// PurchaseResult is returned after a successful seed purchase.
type PurchaseResult struct {
	Inventory      *domain.SeedInventoryEntry `json:"inventory"`
	RemainingCoins int                        `json:"remaining_coins"`
}

// Service defines the interface for nursery operations
type Service interface {
	PurchaseSeed(ctx context.Context, userID string, seedID int) (*PurchaseResult, error)
	PlantSeed(ctx context.Context, userID string, seedID, x, y int, name string) (*domain.Plant, error)
	HarvestPlant(ctx context.Context, userID, plantID string) (*domain.FlowerInventoryEntry, error)
	DeletePlant(ctx context.Context, userID, plantID string) error
	GetSeedInventory(ctx context.Context, userID string) ([]domain.SeedInventoryEntry, error)
	GetFlowerInventory(ctx context.Context, userID string) ([]domain.FlowerInventoryEntry, error)
}

type service struct {
	repo       repository.Nursery
	catalogSvc catalog.Service
	now        func() time.Time
}

// NewService creates a new nursery service
func NewService(repo repository.Nursery, catalogSvc catalog.Service) Service {
	return &service{repo: repo, catalogSvc: catalogSvc, now: time.Now}
}

// PurchaseSeed spends the seed's cost from the wallet and adds one seed to
// the user's inventory. The balance check and both mutations share one
// transaction with the wallet row locked.
func (s *service) PurchaseSeed(ctx context.Context, userID string, seedID int) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info("PurchaseSeed called", "user_id", userID, "seed_id", seedID)

	seed, err := s.catalogSvc.GetSeed(ctx, seedID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	wallet, err := tx.GetWalletForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrWalletNotFound) {
			return nil, fmt.Errorf("%w: balance 0, need %d", domain.ErrInsufficientFunds, seed.CostCoins)
		}
		log.Error("Failed to get wallet", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	now := s.now()
	if !wallet.SpendCoins(seed.CostCoins, now) {
		return nil, fmt.Errorf("%w: balance %d, need %d", domain.ErrInsufficientFunds, wallet.Balance, seed.CostCoins)
	}
	if err := tx.SaveWallet(ctx, wallet); err != nil {
		log.Error("Failed to save wallet", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to save wallet: %w", err)
	}

	entry, err := tx.UpsertSeedInventory(ctx, userID, seedID, 1)
	if err != nil {
		log.Error("Failed to update seed inventory", "error", err, "user_id", userID, "seed_id", seedID)
		return nil, fmt.Errorf("failed to update seed inventory: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.SeedsPurchased.WithLabelValues(seed.Name).Inc()
	metrics.CoinsSpent.Add(float64(seed.CostCoins))

	log.Info("Seed purchased", "user_id", userID, "seed", seed.Name, "cost", seed.CostCoins, "quantity", entry.Quantity)
	return &PurchaseResult{Inventory: entry, RemainingCoins: wallet.Balance}, nil
}

// PlantSeed consumes one inventory unit and creates a plant at the given
// garden cell. Occupancy and inventory are checked on locked rows so only
// one of two concurrent attempts at the same cell can succeed.
func (s *service) PlantSeed(ctx context.Context, userID string, seedID, x, y int, name string) (*domain.Plant, error) {
	log := logger.FromContext(ctx)
	log.Info("PlantSeed called", "user_id", userID, "seed_id", seedID, "x", x, "y", y)

	seed, err := s.catalogSvc.GetSeed(ctx, seedID)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = seed.Name
	} else if len(name) > MaxPlantNameLength {
		name = name[:MaxPlantNameLength]
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	g, err := tx.GetGardenByUser(ctx, userID)
	if err != nil {
		log.Error("Failed to get garden", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get garden: %w", err)
	}

	if !g.Contains(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d garden", domain.ErrPositionOutOfBounds, x, y, g.SizeX, g.SizeY)
	}

	occupant, err := tx.GetPlantAtForUpdate(ctx, g.ID, x, y)
	if err != nil {
		log.Error("Failed to check position", "error", err, "garden_id", g.ID)
		return nil, fmt.Errorf("failed to check position: %w", err)
	}
	if occupant != nil {
		return nil, fmt.Errorf("%w: (%d,%d)", domain.ErrPositionOccupied, x, y)
	}

	entry, err := tx.GetSeedInventoryForUpdate(ctx, userID, seedID)
	if err != nil {
		log.Error("Failed to get seed inventory", "error", err, "user_id", userID, "seed_id", seedID)
		return nil, fmt.Errorf("failed to get seed inventory: %w", err)
	}
	if entry == nil || entry.Quantity <= 0 {
		return nil, fmt.Errorf("%w: seed %d", domain.ErrNoSeedsInInventory, seedID)
	}

	now := s.now()
	plant := &domain.Plant{
		GardenID:       g.ID,
		SeedID:         seed.ID,
		Name:           name,
		Stage:          domain.StageSeed,
		GrowthProgress: 0,
		Health:         domain.FullHealth,
		PositionX:      x,
		PositionY:      y,
		PlantedAt:      now,
	}
	if err := tx.InsertPlant(ctx, plant); err != nil {
		log.Error("Failed to insert plant", "error", err, "garden_id", g.ID)
		return nil, fmt.Errorf("failed to insert plant: %w", err)
	}

	if entry.Quantity == 1 {
		if err := tx.DeleteSeedInventory(ctx, userID, seedID); err != nil {
			return nil, fmt.Errorf("failed to delete seed inventory row: %w", err)
		}
	} else {
		if _, err := tx.UpsertSeedInventory(ctx, userID, seedID, -1); err != nil {
			return nil, fmt.Errorf("failed to decrement seed inventory: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.PlantsPlanted.WithLabelValues(seed.Name).Inc()

	log.Info("Seed planted", "user_id", userID, "plant_id", plant.ID, "seed", seed.Name, "x", x, "y", y)
	return plant, nil
}

// HarvestPlant converts a blooming plant into a flower-inventory entry and
// destroys the plant, as one unit.
func (s *service) HarvestPlant(ctx context.Context, userID, plantID string) (*domain.FlowerInventoryEntry, error) {
	log := logger.FromContext(ctx)
	log.Info("HarvestPlant called", "user_id", userID, "plant_id", plantID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	plant, err := s.getOwnedPlant(ctx, tx, userID, plantID)
	if err != nil {
		return nil, err
	}

	if plant.Stage != domain.StageBlooming {
		return nil, fmt.Errorf("%w: stage is %s", domain.ErrPlantNotBlooming, plant.Stage)
	}

	// Read the seed row inside the transaction rather than through the
	// catalog: a seed flipped unavailable (or a stale cache entry) must not
	// block harvesting a plant that already grew from it.
	seed, err := tx.GetSeedByID(ctx, plant.SeedID)
	if err != nil {
		return nil, err
	}

	entry, err := tx.UpsertFlowerInventory(ctx, &domain.FlowerInventoryEntry{
		UserID:    userID,
		Name:      seed.Name,
		PlantType: seed.PlantType,
		Rarity:    seed.Rarity,
		Quantity:  1,
	})
	if err != nil {
		log.Error("Failed to update flower inventory", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to update flower inventory: %w", err)
	}

	if err := tx.DeletePlant(ctx, plantID); err != nil {
		log.Error("Failed to delete harvested plant", "error", err, "plant_id", plantID)
		return nil, fmt.Errorf("failed to delete harvested plant: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.PlantsHarvested.WithLabelValues(seed.Name).Inc()

	log.Info("Plant harvested", "user_id", userID, "plant_id", plantID, "flower", seed.Name, "quantity", entry.Quantity)
	return entry, nil
}

// DeletePlant removes a plant the user owns. No inventory or flower side
// effects; abandoning a plant forfeits it.
func (s *service) DeletePlant(ctx context.Context, userID, plantID string) error {
	log := logger.FromContext(ctx)
	log.Info("DeletePlant called", "user_id", userID, "plant_id", plantID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := s.getOwnedPlant(ctx, tx, userID, plantID); err != nil {
		return err
	}

	if err := tx.DeletePlant(ctx, plantID); err != nil {
		log.Error("Failed to delete plant", "error", err, "plant_id", plantID)
		return fmt.Errorf("failed to delete plant: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Plant deleted", "user_id", userID, "plant_id", plantID)
	return nil
}

// getOwnedPlant locks the plant row and verifies it belongs to the caller's
// garden. Missing plants surface as NotFound, other users' plants as
// ownership errors.
func (s *service) getOwnedPlant(ctx context.Context, tx repository.NurseryTx, userID, plantID string) (*domain.Plant, error) {
	plant, err := tx.GetPlantForUpdate(ctx, plantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plant: %w", err)
	}

	g, err := tx.GetGardenByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrGardenNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPlantNotOwned, plantID)
		}
		return nil, fmt.Errorf("failed to get garden: %w", err)
	}
	if plant.GardenID != g.ID {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlantNotOwned, plantID)
	}
	return plant, nil
}

func (s *service) GetSeedInventory(ctx context.Context, userID string) ([]domain.SeedInventoryEntry, error) {
	entries, err := s.repo.ListSeedInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seed inventory: %w", err)
	}
	return entries, nil
}

func (s *service) GetFlowerInventory(ctx context.Context, userID string) ([]domain.FlowerInventoryEntry, error) {
	entries, err := s.repo.ListFlowerInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list flower inventory: %w", err)
	}
	return entries, nil
}
