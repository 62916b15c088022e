package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
	"github.com/ovelgard/StrideGarden_Go/internal/repository"
)

type gardenRepository struct {
	db *pgxpool.Pool
}

// NewGardenRepository creates a new PostgreSQL garden repository
func NewGardenRepository(db *pgxpool.Pool) repository.Garden {
	return &gardenRepository{db: db}
}

func (r *gardenRepository) GetGardenByUser(ctx context.Context, userID string) (*domain.Garden, error) {
	return getGardenByUser(ctx, r.db, userID, false)
}

func (r *gardenRepository) CreateGarden(ctx context.Context, garden *domain.Garden) error {
	return insertGarden(ctx, r.db, garden)
}

func (r *gardenRepository) UpdateGardenName(ctx context.Context, gardenID, name string) error {
	id, err := parseRowID(gardenID, domain.ErrGardenNotFound)
	if err != nil {
		return err
	}

	query := "UPDATE gardens SET garden_name = $2, updated_at = NOW() WHERE garden_id = $1"
	tag, err := r.db.Exec(ctx, query, id, name)
	if err != nil {
		return fmt.Errorf("failed to rename garden: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrGardenNotFound, gardenID)
	}
	return nil
}

func (r *gardenRepository) ListPlants(ctx context.Context, gardenID string) ([]domain.Plant, error) {
	return listPlants(ctx, r.db, gardenID, false)
}

func (r *gardenRepository) BeginTx(ctx context.Context) (repository.GardenTx, error) {
	tx, err := beginTx(ctx, r.db)
	if err != nil {
		return nil, err
	}
	return &gardenTx{tx: tx}, nil
}

// gardenTx is the transaction scope for plant upkeep (rename, move).
type gardenTx struct {
	tx pgx.Tx
}

func (t *gardenTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *gardenTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *gardenTx) GetPlantForUpdate(ctx context.Context, plantID string) (*domain.Plant, error) {
	return getPlantByID(ctx, t.tx, plantID, true)
}

func (t *gardenTx) GetPlantAt(ctx context.Context, gardenID string, x, y int) (*domain.Plant, error) {
	return getPlantAt(ctx, t.tx, gardenID, x, y, false)
}

func (t *gardenTx) UpdatePlant(ctx context.Context, plant *domain.Plant) error {
	return updatePlant(ctx, t.tx, plant)
}
