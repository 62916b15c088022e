package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
	"github.com/ovelgard/StrideGarden_Go/internal/repository"
)

// MockRepository implements repository.Catalog for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListAvailableSeeds(ctx context.Context) ([]domain.Seed, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seed), args.Error(1)
}

func (m *MockRepository) GetSeedByID(ctx context.Context, seedID int) (*domain.Seed, error) {
	args := m.Called(ctx, seedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seed), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.CatalogTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.CatalogTx), args.Error(1)
}

// MockTx implements repository.CatalogTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) GetSeedByName(ctx context.Context, name string) (*domain.Seed, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seed), args.Error(1)
}

func (m *MockTx) InsertSeed(ctx context.Context, seed *domain.Seed) error {
	args := m.Called(ctx, seed)
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

var (
	_ repository.Catalog   = (*MockRepository)(nil)
	_ repository.CatalogTx = (*MockTx)(nil)
)

func availableSeed() *domain.Seed {
	return &domain.Seed{
		ID:          3,
		Name:        "Mystic Rose",
		CostCoins:   50,
		Rarity:      domain.RarityCommon,
		PlantType:   "flower",
		IsAvailable: true,
	}
}

func TestGetSeed_CachesLookups(t *testing.T) {
	mockRepo := &MockRepository{}
	service := NewService(mockRepo)
	ctx := context.Background()

	seed := availableSeed()
	mockRepo.On("GetSeedByID", ctx, seed.ID).Return(seed, nil).Once()

	first, err := service.GetSeed(ctx, seed.ID)
	require.NoError(t, err)

	second, err := service.GetSeed(ctx, seed.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	mockRepo.AssertNumberOfCalls(t, "GetSeedByID", 1)
}

func TestGetSeed_UnavailableBehavesAsAbsent(t *testing.T) {
	mockRepo := &MockRepository{}
	service := NewService(mockRepo)
	ctx := context.Background()

	retired := availableSeed()
	retired.IsAvailable = false
	mockRepo.On("GetSeedByID", ctx, retired.ID).Return(retired, nil)

	_, err := service.GetSeed(ctx, retired.ID)

	assert.ErrorIs(t, err, domain.ErrSeedNotFound)
}

func TestGetSeed_NotFound(t *testing.T) {
	mockRepo := &MockRepository{}
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetSeedByID", ctx, 99).Return(nil, domain.ErrSeedNotFound)

	_, err := service.GetSeed(ctx, 99)

	assert.ErrorIs(t, err, domain.ErrSeedNotFound)
}

func TestEnsureDefaultSeeds_EmptyCatalog(t *testing.T) {
	mockRepo := &MockRepository{}
	tx := &MockTx{}
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetSeedByName", ctx, mock.Anything).Return(nil, nil)
	tx.On("InsertSeed", ctx, mock.Anything).Return(nil)
	tx.On("Commit", ctx).Return(nil)

	err := service.EnsureDefaultSeeds(ctx)

	require.NoError(t, err)
	tx.AssertNumberOfCalls(t, "InsertSeed", len(DefaultSeeds))
}

func TestEnsureDefaultSeeds_Idempotent(t *testing.T) {
	mockRepo := &MockRepository{}
	tx := &MockTx{}
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("BeginTx", ctx).Return(tx, nil)
	for i := range DefaultSeeds {
		existing := DefaultSeeds[i]
		existing.ID = i + 1
		tx.On("GetSeedByName", ctx, existing.Name).Return(&existing, nil)
	}
	tx.On("Commit", ctx).Return(nil)

	err := service.EnsureDefaultSeeds(ctx)

	require.NoError(t, err)
	tx.AssertNotCalled(t, "InsertSeed", mock.Anything, mock.Anything)
}

func TestEnsureDefaultSeeds_InsertErrorAborts(t *testing.T) {
	mockRepo := &MockRepository{}
	tx := &MockTx{}
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetSeedByName", ctx, mock.Anything).Return(nil, nil)
	tx.On("InsertSeed", ctx, mock.Anything).Return(errors.New("duplicate key"))

	err := service.EnsureDefaultSeeds(ctx)

	require.Error(t, err)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestListSeeds(t *testing.T) {
	mockRepo := &MockRepository{}
	service := NewService(mockRepo)
	ctx := context.Background()

	seeds := []domain.Seed{*availableSeed()}
	mockRepo.On("ListAvailableSeeds", ctx).Return(seeds, nil)

	got, err := service.ListSeeds(ctx)

	require.NoError(t, err)
	assert.Equal(t, seeds, got)
}
