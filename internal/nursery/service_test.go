package nursery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
)

const (
	testUserID  = "7b8a1c9e-2f3d-4e5a-9b6c-1d2e3f4a5b6c"
	otherUserID = "0f1e2d3c-4b5a-6978-8695-a4b3c2d1e0f9"
)

func newTxMock() *MockTx {
	tx := &MockTx{}
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()
	return tx
}

func testSeed() *domain.Seed {
	return &domain.Seed{
		ID:          3,
		Name:        "Mystic Rose",
		CostCoins:   50,
		Rarity:      domain.RarityCommon,
		PlantType:   "flower",
		IsAvailable: true,
	}
}

func testGarden() *domain.Garden {
	return &domain.Garden{
		ID:     "1",
		UserID: testUserID,
		Name:   domain.DefaultGardenName,
		SizeX:  10,
		SizeY:  10,
		Level:  1,
	}
}

func TestPurchaseSeed_Success(t *testing.T) {
	mockRepo := &MockRepository{}
	mockCatalog := &MockCatalogService{}
	tx := newTxMock()
	service := NewService(mockRepo, mockCatalog)
	ctx := context.Background()

	seed := testSeed()
	wallet := &domain.Wallet{UserID: testUserID, Balance: 120, TotalEarned: 120}

	mockCatalog.On("GetSeed", ctx, seed.ID).Return(seed, nil)
	mockRepo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetWalletForUpdate", ctx, testUserID).Return(wallet, nil)
	tx.On("SaveWallet", ctx, wallet).Return(nil)
	tx.On("UpsertSeedInventory", ctx, testUserID, seed.ID, 1).
		Return(&domain.SeedInventoryEntry{UserID: testUserID, SeedID: seed.ID, Quantity: 1}, nil)
	tx.On("Commit", ctx).Return(nil)

	result, err := service.PurchaseSeed(ctx, testUserID, seed.ID)

	require.NoError(t, err)
	assert.Equal(t, 70, result.RemainingCoins)
	assert.Equal(t, 1, result.Inventory.Quantity)
	assert.Equal(t, 70, wallet.Balance)
	assert.Equal(t, 50, wallet.TotalSpent)
	tx.AssertCalled(t, "Commit", ctx)
}

func TestPurchaseSeed_InsufficientFunds(t *testing.T) {
	mockRepo := &MockRepository{}
	mockCatalog := &MockCatalogService{}
	tx := newTxMock()
	service := NewService(mockRepo, mockCatalog)
	ctx := context.Background()

	seed := testSeed()
	wallet := &domain.Wallet{UserID: testUserID, Balance: 30}

	mockCatalog.On("GetSeed", ctx, seed.ID).Return(seed, nil)
	mockRepo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetWalletForUpdate", ctx, testUserID).Return(wallet, nil)

	_, err := service.PurchaseSeed(ctx, testUserID, seed.ID)

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, 30, wallet.Balance)
	assert.Equal(t, 0, wallet.TotalSpent)
	tx.AssertNotCalled(t, "SaveWallet", mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPurchaseSeed_NoWalletYet(t *testing.T) {
	mockRepo := &MockRepository{}
	mockCatalog := &MockCatalogService{}
	tx := newTxMock()
	service := NewService(mockRepo, mockCatalog)
	ctx := context.Background()

	seed := testSeed()
	mockCatalog.On("GetSeed", ctx, seed.ID).Return(seed, nil)
	mockRepo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetWalletForUpdate", ctx, testUserID).Return(nil, domain.ErrWalletNotFound)

	_, err := service.PurchaseSeed(ctx, testUserID, seed.ID)

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestPurchaseSeed_UnknownSeed(t *testing.T) {
	mockRepo := &MockRepository{}
	mockCatalog := &MockCatalogService{}
	service := NewService(mockRepo, mockCatalog)
	ctx := context.Background()

	mockCatalog.On("GetSeed", ctx, 99).Return(nil, domain.ErrSeedNotFound)

	_, err := service.PurchaseSeed(ctx, testUserID, 99)

	assert.ErrorIs(t, err, domain.ErrSeedNotFound)
	mockRepo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestPlantSeed_Success(t *testing.T) {
	mockRepo := &MockRepository{}
	mockCatalog := &MockCatalogService{}
	tx := newTxMock()
	service := NewService(mockRepo, mockCatalog)
	ctx := context.Background()

	seed := testSeed()
	g := testGarden()

	mockCatalog.On("GetSeed", ctx, seed.ID).Return(seed, nil)
	mockRepo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetGardenByUser", ctx, testUserID).Return(g, nil)
	tx.On("GetPlantAtForUpdate", ctx, g.ID, 3, 4).Return(nil, nil)
	tx.On("GetSeedInventoryForUpdate", ctx, testUserID, seed.ID).
		Return(&domain.SeedInventoryEntry{UserID: testUserID, SeedID: seed.ID, Quantity: 2}, nil)
	tx.On("InsertPlant", ctx, mock.Anything).Return(nil)
	tx.On("UpsertSeedInventory", ctx, testUserID, seed.ID, -1).
		Return(&domain.SeedInventoryEntry{UserID: testUserID, SeedID: seed.ID, Quantity: 1}, nil)
	tx.On("Commit", ctx).Return(nil)

	plant, err := service.PlantSeed(ctx, testUserID, seed.ID, 3, 4, "")

	require.NoError(t, err)
	assert.Equal(t, seed.Name, plant.Name) // defaults to the seed name
	assert.Equal(t, domain.StageSeed, plant.Stage)
	assert.Equal(t, 3, plant.PositionX)
	assert.Equal(t, 4, plant.PositionY)
	assert.InDelta(t, domain.FullHealth, plant.Health, 0.001)
	tx.AssertNotCalled(t, "DeleteSeedInventory", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlantSeed_LastSeedDeletesInventoryRow(t *testing.T) {
	mockRepo := &MockRepository{}
	mockCatalog := &MockCatalogService{}
	tx := newTxMock()
	service := NewService(mockRepo, mockCatalog)
	ctx := context.Background()

	seed := testSeed()
	g := testGarden()

	mockCatalog.On("GetSeed", ctx, seed.ID).Return(seed, nil)
	mockRepo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetGardenByUser", ctx, testUserID).Return(g, nil)
	tx.On("GetPlantAtForUpdate", ctx, g.ID, 0, 0).Return(nil, nil)
	tx.On("GetSeedInventoryForUpdate", ctx, testUserID, seed.ID).
		Return(&domain.SeedInventoryEntry{UserID: testUserID, SeedID: seed.ID, Quantity: 1}, nil)
	tx.On("InsertPlant", ctx, mock.Anything).Return(nil)
	tx.On("DeleteSeedInventory", ctx, testUserID, seed.ID).Return(nil)
	tx.On("Commit", ctx).Return(nil)

	_, err := service.PlantSeed(ctx, testUserID, seed.ID, 0, 0, "Rosie")

	require.NoError(t, err)
	tx.AssertCalled(t, "DeleteSeedInventory", ctx, testUserID, seed.ID)
	tx.AssertNotCalled(t, "UpsertSeedInventory", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPlantSeed_PositionOutOfBounds(t *testing.T) {
	mockRepo := &MockRepository{}
	mockCatalog := &MockCatalogService{}
	tx := newTxMock()
	service := NewService(mockRepo, mockCatalog)
	ctx := context.Background()

	seed := testSeed()
	g := testGarden()

	mockCatalog.On("GetSeed", ctx, seed.ID).Return(seed, nil)
	mockRepo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetGardenByUser", ctx, testUserID).Return(g, nil)

	_, err := service.PlantSeed(ctx, testUserID, seed.ID, 10, 0, "")

	assert.ErrorIs(t, err, domain.ErrPositionOutOfBounds)
	tx.AssertNotCalled(t, "InsertPlant", mock.Anything, mock.Anything)
}

func TestPlantSeed_PositionOccupied(t *testing.T) {
	mockRepo := &MockRepository{}
	mockCatalog := &MockCatalogService{}
	tx := newTxMock()
	service := NewService(mockRepo, mockCatalog)
	ctx := context.Background()

	seed := testSeed()
	g := testGarden()
	occupant := &domain.Plant{ID: "9", GardenID: g.ID, PositionX: 2, PositionY: 2}

	mockCatalog.On("GetSeed", ctx, seed.ID).Return(seed, nil)
	mockRepo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetGardenByUser", ctx, testUserID).Return(g, nil)
	tx.On("GetPlantAtForUpdate", ctx, g.ID, 2, 2).Return(occupant, nil)

	_, err := service.PlantSeed(ctx, testUserID, seed.ID, 2, 2, "")

	assert.ErrorIs(t, err, domain.ErrPositionOccupied)
	tx.AssertNotCalled(t, "InsertPlant", mock.Anything, mock.Anything)
}

func TestPlantSeed_NoSeedsInInventory(t *testing.T) {
	mockRepo := &MockRepository{}
	mockCatalog := &MockCatalogService{}
	tx := newTxMock()
	service := NewService(mockRepo, mockCatalog)
	ctx := context.Background()

	seed := testSeed()
	g := testGarden()

	mockCatalog.On("GetSeed", ctx, seed.ID).Return(seed, nil)
	mockRepo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetGardenByUser", ctx, testUserID).Return(g, nil)
	tx.On("GetPlantAtForUpdate", ctx, g.ID, 1, 1).Return(nil, nil)
	tx.On("GetSeedInventoryForUpdate", ctx, testUserID, seed.ID).Return(nil, nil)

	_, err := service.PlantSeed(ctx, testUserID, seed.ID, 1, 1, "")

	assert.ErrorIs(t, err, domain.ErrNoSeedsInInventory)
	tx.AssertNotCalled(t, "InsertPlant", mock.Anything, mock.Anything)
}

func TestHarvestPlant_Success(t *testing.T) {
	mockRepo := &MockRepository{}
	mockCatalog := &MockCatalogService{}
	tx := newTxMock()
	service := NewService(mockRepo, mockCatalog)
	ctx := context.Background()

	seed := testSeed()
	g := testGarden()
	plant := &domain.Plant{
		ID:             "5",
		GardenID:       g.ID,
		SeedID:         seed.ID,
		Stage:          domain.StageBlooming,
		GrowthProgress: 100,
	}

	mockRepo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetPlantForUpdate", ctx, plant.ID).Return(plant, nil)
	tx.On("GetGardenByUser", ctx, testUserID).Return(g, nil)
	tx.On("GetSeedByID", ctx, seed.ID).Return(seed, nil)
	tx.On("UpsertFlowerInventory", ctx, mock.Anything).
		Return(&domain.FlowerInventoryEntry{UserID: testUserID, Name: seed.Name, Quantity: 2}, nil)
	tx.On("DeletePlant", ctx, plant.ID).Return(nil)
	tx.On("Commit", ctx).Return(nil)

	entry, err := service.HarvestPlant(ctx, testUserID, plant.ID)

	require.NoError(t, err)
	assert.Equal(t, seed.Name, entry.Name)
	assert.Equal(t, 2, entry.Quantity)
	tx.AssertCalled(t, "DeletePlant", ctx, plant.ID)
	mockCatalog.AssertNotCalled(t, "GetSeed", mock.Anything, mock.Anything)
}

func TestHarvestPlant_RetiredSeedStillHarvests(t *testing.T) {
	mockRepo := &MockRepository{}
	mockCatalog := &MockCatalogService{}
	tx := newTxMock()
	service := NewService(mockRepo, mockCatalog)
	ctx := context.Background()

	// The seed was flipped unavailable after planting; the harvest reads
	// the row directly and must not be blocked by catalog availability.
	seed := testSeed()
	seed.IsAvailable = false
	g := testGarden()
	plant := &domain.Plant{
		ID:             "5",
		GardenID:       g.ID,
		SeedID:         seed.ID,
		Stage:          domain.StageBlooming,
		GrowthProgress: 100,
	}

	mockRepo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetPlantForUpdate", ctx, plant.ID).Return(plant, nil)
	tx.On("GetGardenByUser", ctx, testUserID).Return(g, nil)
	tx.On("GetSeedByID", ctx, seed.ID).Return(seed, nil)
	tx.On("UpsertFlowerInventory", ctx, mock.Anything).
		Return(&domain.FlowerInventoryEntry{UserID: testUserID, Name: seed.Name, Rarity: seed.Rarity, Quantity: 1}, nil)
	tx.On("DeletePlant", ctx, plant.ID).Return(nil)
	tx.On("Commit", ctx).Return(nil)

	entry, err := service.HarvestPlant(ctx, testUserID, plant.ID)

	require.NoError(t, err)
	assert.Equal(t, seed.Name, entry.Name)
	assert.Equal(t, 1, entry.Quantity)
}

func TestHarvestPlant_NotBlooming(t *testing.T) {
	mockRepo := &MockRepository{}
	mockCatalog := &MockCatalogService{}
	tx := newTxMock()
	service := NewService(mockRepo, mockCatalog)
	ctx := context.Background()

	g := testGarden()
	plant := &domain.Plant{ID: "5", GardenID: g.ID, SeedID: 3, Stage: domain.StageSapling, GrowthProgress: 45}

	mockRepo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetPlantForUpdate", ctx, plant.ID).Return(plant, nil)
	tx.On("GetGardenByUser", ctx, testUserID).Return(g, nil)

	_, err := service.HarvestPlant(ctx, testUserID, plant.ID)

	assert.ErrorIs(t, err, domain.ErrPlantNotBlooming)
	tx.AssertNotCalled(t, "DeletePlant", mock.Anything, mock.Anything)
}

func TestHarvestPlant_NotOwned(t *testing.T) {
	mockRepo := &MockRepository{}
	mockCatalog := &MockCatalogService{}
	tx := newTxMock()
	service := NewService(mockRepo, mockCatalog)
	ctx := context.Background()

	plant := &domain.Plant{ID: "5", GardenID: "1", Stage: domain.StageBlooming}
	otherGarden := &domain.Garden{ID: "2", UserID: otherUserID, SizeX: 10, SizeY: 10, Level: 1}

	mockRepo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetPlantForUpdate", ctx, plant.ID).Return(plant, nil)
	tx.On("GetGardenByUser", ctx, otherUserID).Return(otherGarden, nil)

	_, err := service.HarvestPlant(ctx, otherUserID, plant.ID)

	assert.ErrorIs(t, err, domain.ErrPlantNotOwned)
	tx.AssertNotCalled(t, "DeletePlant", mock.Anything, mock.Anything)
}

func TestHarvestPlant_PlantNotFound(t *testing.T) {
	mockRepo := &MockRepository{}
	mockCatalog := &MockCatalogService{}
	tx := newTxMock()
	service := NewService(mockRepo, mockCatalog)
	ctx := context.Background()

	mockRepo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetPlantForUpdate", ctx, "404").Return(nil, domain.ErrPlantNotFound)

	_, err := service.HarvestPlant(ctx, testUserID, "404")

	assert.ErrorIs(t, err, domain.ErrPlantNotFound)
}

func TestDeletePlant_Success(t *testing.T) {
	mockRepo := &MockRepository{}
	mockCatalog := &MockCatalogService{}
	tx := newTxMock()
	service := NewService(mockRepo, mockCatalog)
	ctx := context.Background()

	g := testGarden()
	plant := &domain.Plant{ID: "5", GardenID: g.ID, Stage: domain.StageSprout}

	mockRepo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetPlantForUpdate", ctx, plant.ID).Return(plant, nil)
	tx.On("GetGardenByUser", ctx, testUserID).Return(g, nil)
	tx.On("DeletePlant", ctx, plant.ID).Return(nil)
	tx.On("Commit", ctx).Return(nil)

	err := service.DeletePlant(ctx, testUserID, plant.ID)

	require.NoError(t, err)
	tx.AssertCalled(t, "Commit", ctx)
}

func TestDeletePlant_NoGardenMeansNotOwned(t *testing.T) {
	mockRepo := &MockRepository{}
	mockCatalog := &MockCatalogService{}
	tx := newTxMock()
	service := NewService(mockRepo, mockCatalog)
	ctx := context.Background()

	plant := &domain.Plant{ID: "5", GardenID: "1"}

	mockRepo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetPlantForUpdate", ctx, plant.ID).Return(plant, nil)
	tx.On("GetGardenByUser", ctx, otherUserID).Return(nil, domain.ErrGardenNotFound)

	err := service.DeletePlant(ctx, otherUserID, plant.ID)

	assert.ErrorIs(t, err, domain.ErrPlantNotOwned)
	tx.AssertNotCalled(t, "DeletePlant", mock.Anything, mock.Anything)
}

func TestGetSeedInventory(t *testing.T) {
	mockRepo := &MockRepository{}
	mockCatalog := &MockCatalogService{}
	service := NewService(mockRepo, mockCatalog)
	ctx := context.Background()

	entries := []domain.SeedInventoryEntry{
		{UserID: testUserID, SeedID: 3, SeedName: "Mystic Rose", Quantity: 2},
	}
	mockRepo.On("ListSeedInventory", ctx, testUserID).Return(entries, nil)

	got, err := service.GetSeedInventory(ctx, testUserID)

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
