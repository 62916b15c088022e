package repository

import (
	"context"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
)

// Nursery defines persistence for the seed purchase, planting and harvest
// workflow plus the two per-user inventories it maintains.
type Nursery interface {
	BeginTx(ctx context.Context) (NurseryTx, error)
	ListSeedInventory(ctx context.Context, userID string) ([]domain.SeedInventoryEntry, error)
	ListFlowerInventory(ctx context.Context, userID string) ([]domain.FlowerInventoryEntry, error)
}

// NurseryTx is the transaction scope for buy/plant/harvest/delete.
// Spend-vs-balance and occupancy are check-then-act sequences; the ForUpdate
// getters lock the rows those checks read so concurrent requests cannot
// double-spend or double-occupy.
type NurseryTx interface {
	Tx
	GetWalletForUpdate(ctx context.Context, userID string) (*domain.Wallet, error)
	SaveWallet(ctx context.Context, wallet *domain.Wallet) error
	GetSeedInventoryForUpdate(ctx context.Context, userID string, seedID int) (*domain.SeedInventoryEntry, error)
	UpsertSeedInventory(ctx context.Context, userID string, seedID, delta int) (*domain.SeedInventoryEntry, error)
	DeleteSeedInventory(ctx context.Context, userID string, seedID int) error
	GetGardenByUser(ctx context.Context, userID string) (*domain.Garden, error)
	GetPlantAtForUpdate(ctx context.Context, gardenID string, x, y int) (*domain.Plant, error)
	InsertPlant(ctx context.Context, plant *domain.Plant) error
	GetPlantForUpdate(ctx context.Context, plantID string) (*domain.Plant, error)
	// GetSeedByID reads the seed row regardless of availability, so owned
	// plants of retired seeds can still be harvested.
	GetSeedByID(ctx context.Context, seedID int) (*domain.Seed, error)
	DeletePlant(ctx context.Context, plantID string) error
	UpsertFlowerInventory(ctx context.Context, entry *domain.FlowerInventoryEntry) (*domain.FlowerInventoryEntry, error)
}
