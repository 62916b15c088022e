package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
	"github.com/ovelgard/StrideGarden_Go/internal/repository"
)

type nurseryRepository struct {
	db *pgxpool.Pool
}

// NewNurseryRepository creates a new PostgreSQL nursery repository
func NewNurseryRepository(db *pgxpool.Pool) repository.Nursery {
	return &nurseryRepository{db: db}
}

func (r *nurseryRepository) BeginTx(ctx context.Context) (repository.NurseryTx, error) {
	tx, err := beginTx(ctx, r.db)
	if err != nil {
		return nil, err
	}
	return &nurseryTx{tx: tx}, nil
}

func (r *nurseryRepository) ListSeedInventory(ctx context.Context, userID string) ([]domain.SeedInventoryEntry, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT si.user_id, si.seed_id, s.seed_name, si.quantity
		FROM seed_inventory si
		JOIN seeds s ON s.seed_id = si.seed_id
		WHERE si.user_id = $1
		ORDER BY s.seed_name
	`
	rows, err := r.db.Query(ctx, query, userUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seed inventory: %w", err)
	}
	defer rows.Close()

	entries := []domain.SeedInventoryEntry{}
	for rows.Next() {
		entry, err := scanSeedInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan seed inventory: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read seed inventory: %w", err)
	}
	return entries, nil
}

func (r *nurseryRepository) ListFlowerInventory(ctx context.Context, userID string) ([]domain.FlowerInventoryEntry, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT user_id, flower_name, plant_type, rarity, quantity
		FROM flower_inventory
		WHERE user_id = $1
		ORDER BY flower_name
	`
	rows, err := r.db.Query(ctx, query, userUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to list flower inventory: %w", err)
	}
	defer rows.Close()

	entries := []domain.FlowerInventoryEntry{}
	for rows.Next() {
		entry, err := scanFlowerInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flower inventory: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read flower inventory: %w", err)
	}
	return entries, nil
}

func scanSeedInventory(row pgx.Row) (*domain.SeedInventoryEntry, error) {
	var entry domain.SeedInventoryEntry
	var userID uuid.UUID
	if err := row.Scan(&userID, &entry.SeedID, &entry.SeedName, &entry.Quantity); err != nil {
		return nil, err
	}
	entry.UserID = userID.String()
	return &entry, nil
}

func scanFlowerInventory(row pgx.Row) (*domain.FlowerInventoryEntry, error) {
	var entry domain.FlowerInventoryEntry
	var userID uuid.UUID
	if err := row.Scan(&userID, &entry.Name, &entry.PlantType, &entry.Rarity, &entry.Quantity); err != nil {
		return nil, err
	}
	entry.UserID = userID.String()
	return &entry, nil
}

// nurseryTx is the transaction scope for buy/plant/harvest/delete.
type nurseryTx struct {
	tx pgx.Tx
}

func (t *nurseryTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *nurseryTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *nurseryTx) GetWalletForUpdate(ctx context.Context, userID string) (*domain.Wallet, error) {
	return getWallet(ctx, t.tx, userID, true)
}

func (t *nurseryTx) SaveWallet(ctx context.Context, wallet *domain.Wallet) error {
	return updateWallet(ctx, t.tx, wallet)
}

// GetSeedInventoryForUpdate returns nil without error when the user has no
// row for the seed.
func (t *nurseryTx) GetSeedInventoryForUpdate(ctx context.Context, userID string, seedID int) (*domain.SeedInventoryEntry, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT si.user_id, si.seed_id, s.seed_name, si.quantity
		FROM seed_inventory si
		JOIN seeds s ON s.seed_id = si.seed_id
		WHERE si.user_id = $1 AND si.seed_id = $2
		FOR UPDATE OF si
	`
	entry, err := scanSeedInventory(t.tx.QueryRow(ctx, query, userUUID, seedID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get seed inventory: %w", err)
	}
	return entry, nil
}

func (t *nurseryTx) UpsertSeedInventory(ctx context.Context, userID string, seedID, delta int) (*domain.SeedInventoryEntry, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO seed_inventory (user_id, seed_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, seed_id)
		DO UPDATE SET quantity = seed_inventory.quantity + $3
		RETURNING quantity
	`
	var quantity int
	if err := t.tx.QueryRow(ctx, query, userUUID, seedID, delta).Scan(&quantity); err != nil {
		return nil, fmt.Errorf("failed to upsert seed inventory: %w", err)
	}
	return &domain.SeedInventoryEntry{UserID: userID, SeedID: seedID, Quantity: quantity}, nil
}

func (t *nurseryTx) DeleteSeedInventory(ctx context.Context, userID string, seedID int) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	if _, err := t.tx.Exec(ctx, "DELETE FROM seed_inventory WHERE user_id = $1 AND seed_id = $2", userUUID, seedID); err != nil {
		return fmt.Errorf("failed to delete seed inventory: %w", err)
	}
	return nil
}

func (t *nurseryTx) GetGardenByUser(ctx context.Context, userID string) (*domain.Garden, error) {
	return getGardenByUser(ctx, t.tx, userID, false)
}

func (t *nurseryTx) GetPlantAtForUpdate(ctx context.Context, gardenID string, x, y int) (*domain.Plant, error) {
	return getPlantAt(ctx, t.tx, gardenID, x, y, true)
}

func (t *nurseryTx) InsertPlant(ctx context.Context, plant *domain.Plant) error {
	gardenID, err := parseRowID(plant.GardenID, domain.ErrGardenNotFound)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO plants (garden_id, seed_id, plant_name, stage, growth_progress, health, position_x, position_y, last_watered, planted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING plant_id
	`
	var plantID int
	if err := t.tx.QueryRow(ctx, query, gardenID, plant.SeedID, plant.Name, string(plant.Stage),
		plant.GrowthProgress, plant.Health, plant.PositionX, plant.PositionY, plant.LastWatered, plant.PlantedAt).Scan(&plantID); err != nil {
		// Two transactions can pass the occupancy check for the same empty
		// cell; the unique constraint on (garden_id, position) decides.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return fmt.Errorf("%w: (%d,%d)", domain.ErrPositionOccupied, plant.PositionX, plant.PositionY)
		}
		return fmt.Errorf("failed to insert plant: %w", err)
	}
	plant.ID = strconv.Itoa(plantID)
	return nil
}

func (t *nurseryTx) GetPlantForUpdate(ctx context.Context, plantID string) (*domain.Plant, error) {
	return getPlantByID(ctx, t.tx, plantID, true)
}

func (t *nurseryTx) GetSeedByID(ctx context.Context, seedID int) (*domain.Seed, error) {
	query := "SELECT " + seedColumns + " FROM seeds WHERE seed_id = $1"
	seed, err := scanSeed(t.tx.QueryRow(ctx, query, seedID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrSeedNotFound, seedID)
		}
		return nil, fmt.Errorf("failed to get seed: %w", err)
	}
	return seed, nil
}

func (t *nurseryTx) DeletePlant(ctx context.Context, plantID string) error {
	id, err := parseRowID(plantID, domain.ErrPlantNotFound)
	if err != nil {
		return err
	}

	tag, err := t.tx.Exec(ctx, "DELETE FROM plants WHERE plant_id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete plant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPlantNotFound, plantID)
	}
	return nil
}

func (t *nurseryTx) UpsertFlowerInventory(ctx context.Context, entry *domain.FlowerInventoryEntry) (*domain.FlowerInventoryEntry, error) {
	userUUID, err := parseUserUUID(entry.UserID)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO flower_inventory (user_id, flower_name, plant_type, rarity, quantity)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, flower_name, plant_type, rarity)
		DO UPDATE SET quantity = flower_inventory.quantity + $5
		RETURNING quantity
	`
	var quantity int
	if err := t.tx.QueryRow(ctx, query, userUUID, entry.Name, entry.PlantType, entry.Rarity, entry.Quantity).Scan(&quantity); err != nil {
		return nil, fmt.Errorf("failed to upsert flower inventory: %w", err)
	}

	result := *entry
	result.Quantity = quantity
	return &result, nil
}
