package nursery

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ovelgard/StrideGarden_Go/internal/catalog"
	"github.com/ovelgard/StrideGarden_Go/internal/domain"
	"github.com/ovelgard/StrideGarden_Go/internal/repository"
)

// MockRepository implements repository.Nursery for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.NurseryTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.NurseryTx), args.Error(1)
}

func (m *MockRepository) ListSeedInventory(ctx context.Context, userID string) ([]domain.SeedInventoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SeedInventoryEntry), args.Error(1)
}

func (m *MockRepository) ListFlowerInventory(ctx context.Context, userID string) ([]domain.FlowerInventoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlowerInventoryEntry), args.Error(1)
}

// MockTx implements repository.NurseryTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) GetWalletForUpdate(ctx context.Context, userID string) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockTx) SaveWallet(ctx context.Context, wallet *domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockTx) GetSeedInventoryForUpdate(ctx context.Context, userID string, seedID int) (*domain.SeedInventoryEntry, error) {
	args := m.Called(ctx, userID, seedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeedInventoryEntry), args.Error(1)
}

func (m *MockTx) UpsertSeedInventory(ctx context.Context, userID string, seedID, delta int) (*domain.SeedInventoryEntry, error) {
	args := m.Called(ctx, userID, seedID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeedInventoryEntry), args.Error(1)
}

func (m *MockTx) DeleteSeedInventory(ctx context.Context, userID string, seedID int) error {
	args := m.Called(ctx, userID, seedID)
	return args.Error(0)
}

func (m *MockTx) GetGardenByUser(ctx context.Context, userID string) (*domain.Garden, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Garden), args.Error(1)
}

func (m *MockTx) GetPlantAtForUpdate(ctx context.Context, gardenID string, x, y int) (*domain.Plant, error) {
	args := m.Called(ctx, gardenID, x, y)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plant), args.Error(1)
}

func (m *MockTx) InsertPlant(ctx context.Context, plant *domain.Plant) error {
	args := m.Called(ctx, plant)
	return args.Error(0)
}

func (m *MockTx) GetPlantForUpdate(ctx context.Context, plantID string) (*domain.Plant, error) {
	args := m.Called(ctx, plantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plant), args.Error(1)
}

func (m *MockTx) GetSeedByID(ctx context.Context, seedID int) (*domain.Seed, error) {
	args := m.Called(ctx, seedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seed), args.Error(1)
}

func (m *MockTx) DeletePlant(ctx context.Context, plantID string) error {
	args := m.Called(ctx, plantID)
	return args.Error(0)
}

func (m *MockTx) UpsertFlowerInventory(ctx context.Context, entry *domain.FlowerInventoryEntry) (*domain.FlowerInventoryEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlowerInventoryEntry), args.Error(1)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockCatalogService implements catalog.Service for testing
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListSeeds(ctx context.Context) ([]domain.Seed, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seed), args.Error(1)
}

func (m *MockCatalogService) GetSeed(ctx context.Context, seedID int) (*domain.Seed, error) {
	args := m.Called(ctx, seedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seed), args.Error(1)
}

func (m *MockCatalogService) EnsureDefaultSeeds(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Ensure mocks implement the interfaces they stand in for
var (
	_ repository.Nursery   = (*MockRepository)(nil)
	_ repository.NurseryTx = (*MockTx)(nil)
	_ catalog.Service      = (*MockCatalogService)(nil)
)
