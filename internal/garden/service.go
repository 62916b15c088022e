// Package garden owns garden progression rules and the upkeep operations on
// gardens and plants: reads, renames and moves. Planting and harvesting live
// in the nursery package.
package garden

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
	"github.com/ovelgard/StrideGarden_Go/internal/logger"
	"github.com/ovelgard/StrideGarden_Go/internal/repository"
)

// MaxNameLength bounds garden and plant names, matching the column width.
const MaxNameLength = 100

// View is a garden together with its plants.
type View struct {
	Garden *domain.Garden `json:"garden"`
	Plants []domain.Plant `json:"plants"`
}

// PlantUpdate describes a rename and/or move of a plant. Nil fields are
// left unchanged; X and Y move together.
type PlantUpdate struct {
	Name *string
	X    *int
	Y    *int
}

// Service defines the interface for garden operations
type Service interface {
	GetGarden(ctx context.Context, userID string) (*View, error)
	RenameGarden(ctx context.Context, userID, name string) (*domain.Garden, error)
	UpdatePlant(ctx context.Context, userID, plantID string, update PlantUpdate) (*domain.Plant, error)
}

type service struct {
	repo repository.Garden
	now  func() time.Time
}

// NewService creates a new garden service
func NewService(repo repository.Garden) Service {
	return &service{repo: repo, now: time.Now}
}

// GetGarden returns the user's garden and plants, creating a default garden
// on first access.
func (s *service) GetGarden(ctx context.Context, userID string) (*View, error) {
	log := logger.FromContext(ctx)

	g, err := s.repo.GetGardenByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrGardenNotFound) {
			log.Error("Failed to get garden", "error", err, "user_id", userID)
			return nil, fmt.Errorf("failed to get garden: %w", err)
		}

		g = NewGarden(userID)
		g.CreatedAt = s.now()
		if err := s.repo.CreateGarden(ctx, g); err != nil {
			log.Error("Failed to create garden", "error", err, "user_id", userID)
			return nil, fmt.Errorf("failed to create garden: %w", err)
		}
		log.Info("Garden created", "user_id", userID, "garden_id", g.ID)
	}

	plants, err := s.repo.ListPlants(ctx, g.ID)
	if err != nil {
		log.Error("Failed to list plants", "error", err, "garden_id", g.ID)
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}

	return &View{Garden: g, Plants: plants}, nil
}

func (s *service) RenameGarden(ctx context.Context, userID, name string) (*domain.Garden, error) {
	log := logger.FromContext(ctx)

	g, err := s.repo.GetGardenByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get garden: %w", err)
	}

	name = truncateName(name)
	if err := s.repo.UpdateGardenName(ctx, g.ID, name); err != nil {
		log.Error("Failed to rename garden", "error", err, "garden_id", g.ID)
		return nil, fmt.Errorf("failed to rename garden: %w", err)
	}
	g.Name = name

	log.Info("Garden renamed", "garden_id", g.ID, "name", name)
	return g, nil
}

// UpdatePlant renames and/or moves a plant owned by the user. A move is
// validated against the garden bounds and current occupancy inside one
// transaction, the same rules planting follows.
func (s *service) UpdatePlant(ctx context.Context, userID, plantID string, update PlantUpdate) (*domain.Plant, error) {
	log := logger.FromContext(ctx)

	g, err := s.repo.GetGardenByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get garden: %w", err)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	plant, err := tx.GetPlantForUpdate(ctx, plantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plant: %w", err)
	}
	if plant.GardenID != g.ID {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlantNotOwned, plantID)
	}

	if update.Name != nil {
		plant.Name = truncateName(*update.Name)
	}

	if update.X != nil && update.Y != nil {
		x, y := *update.X, *update.Y
		if !g.Contains(x, y) {
			return nil, fmt.Errorf("%w: (%d,%d)", domain.ErrPositionOutOfBounds, x, y)
		}
		occupant, err := tx.GetPlantAt(ctx, g.ID, x, y)
		if err != nil {
			return nil, fmt.Errorf("failed to check position: %w", err)
		}
		if occupant != nil && occupant.ID != plant.ID {
			return nil, fmt.Errorf("%w: (%d,%d)", domain.ErrPositionOccupied, x, y)
		}
		plant.PositionX = x
		plant.PositionY = y
	}

	if err := tx.UpdatePlant(ctx, plant); err != nil {
		log.Error("Failed to update plant", "error", err, "plant_id", plantID)
		return nil, fmt.Errorf("failed to update plant: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Plant updated", "plant_id", plantID, "garden_id", g.ID)
	return plant, nil
}

func truncateName(name string) string {
	if len(name) > MaxNameLength {
		return name[:MaxNameLength]
	}
	return name
}
