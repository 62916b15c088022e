package activity

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
	"github.com/ovelgard/StrideGarden_Go/internal/repository"
)

// MockRepository implements repository.Activity for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.ActivityTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.ActivityTx), args.Error(1)
}

func (m *MockRepository) ListRuns(ctx context.Context, userID string, limit, offset int) ([]domain.Run, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Run), args.Error(1)
}

func (m *MockRepository) CountRuns(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// MockTx implements repository.ActivityTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) InsertRun(ctx context.Context, run *domain.Run) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockTx) GetWalletForUpdate(ctx context.Context, userID string) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockTx) CreateWallet(ctx context.Context, wallet *domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockTx) SaveWallet(ctx context.Context, wallet *domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockTx) GetGardenForUpdate(ctx context.Context, userID string) (*domain.Garden, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Garden), args.Error(1)
}

func (m *MockTx) CreateGarden(ctx context.Context, garden *domain.Garden) error {
	args := m.Called(ctx, garden)
	return args.Error(0)
}

func (m *MockTx) SaveGarden(ctx context.Context, garden *domain.Garden) error {
	args := m.Called(ctx, garden)
	return args.Error(0)
}

func (m *MockTx) ListPlantsForUpdate(ctx context.Context, gardenID string) ([]domain.Plant, error) {
	args := m.Called(ctx, gardenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plant), args.Error(1)
}

func (m *MockTx) SavePlantGrowth(ctx context.Context, plant *domain.Plant) error {
	args := m.Called(ctx, plant)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Ensure mocks implement the repository interfaces
var (
	_ repository.Activity   = (*MockRepository)(nil)
	_ repository.ActivityTx = (*MockTx)(nil)
)
