package repository

import (
	"context"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
)

// Garden defines persistence for gardens and plant upkeep operations
// (rename, move) that are not part of the planting/harvest workflow.
type Garden interface {
	GetGardenByUser(ctx context.Context, userID string) (*domain.Garden, error)
	CreateGarden(ctx context.Context, garden *domain.Garden) error
	UpdateGardenName(ctx context.Context, gardenID, name string) error
	ListPlants(ctx context.Context, gardenID string) ([]domain.Plant, error)
	BeginTx(ctx context.Context) (GardenTx, error)
}

// GardenTx is the transaction scope for moving or renaming a plant.
// The occupancy check and the position write must see the same state.
type GardenTx interface {
	Tx
	GetPlantForUpdate(ctx context.Context, plantID string) (*domain.Plant, error)
	GetPlantAt(ctx context.Context, gardenID string, x, y int) (*domain.Plant, error)
	UpdatePlant(ctx context.Context, plant *domain.Plant) error
}
