package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
	"github.com/ovelgard/StrideGarden_Go/internal/repository"
)

type catalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new PostgreSQL catalog repository
func NewCatalogRepository(db *pgxpool.Pool) repository.Catalog {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListAvailableSeeds(ctx context.Context) ([]domain.Seed, error) {
	query := "SELECT " + seedColumns + " FROM seeds WHERE is_available ORDER BY cost_coins, seed_name"
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list seeds: %w", err)
	}
	defer rows.Close()

	seeds := []domain.Seed{}
	for rows.Next() {
		seed, err := scanSeed(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan seed: %w", err)
		}
		seeds = append(seeds, *seed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read seeds: %w", err)
	}
	return seeds, nil
}

func (r *catalogRepository) GetSeedByID(ctx context.Context, seedID int) (*domain.Seed, error) {
	query := "SELECT " + seedColumns + " FROM seeds WHERE seed_id = $1"
	seed, err := scanSeed(r.db.QueryRow(ctx, query, seedID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrSeedNotFound, seedID)
		}
		return nil, fmt.Errorf("failed to get seed: %w", err)
	}
	return seed, nil
}

func (r *catalogRepository) BeginTx(ctx context.Context) (repository.CatalogTx, error) {
	tx, err := beginTx(ctx, r.db)
	if err != nil {
		return nil, err
	}
	return &catalogTx{tx: tx}, nil
}

// catalogTx is the transaction scope for the catalog bootstrap.
type catalogTx struct {
	tx pgx.Tx
}

func (t *catalogTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *catalogTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetSeedByName returns nil without error when no seed has the name, so the
// bootstrap can treat absence as "insert it".
func (t *catalogTx) GetSeedByName(ctx context.Context, name string) (*domain.Seed, error) {
	query := "SELECT " + seedColumns + " FROM seeds WHERE seed_name = $1"
	seed, err := scanSeed(t.tx.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get seed by name: %w", err)
	}
	return seed, nil
}

func (t *catalogTx) InsertSeed(ctx context.Context, seed *domain.Seed) error {
	query := `
		INSERT INTO seeds (seed_name, description, cost_coins, rarity, plant_type, min_weekly_distance, preferred_intensity, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING seed_id
	`
	if err := t.tx.QueryRow(ctx, query, seed.Name, seed.Description, seed.CostCoins, seed.Rarity, seed.PlantType,
		seed.GrowthRequirements.MinWeeklyDistance, seed.GrowthRequirements.PreferredIntensity, seed.IsAvailable).Scan(&seed.ID); err != nil {
		return fmt.Errorf("failed to insert seed: %w", err)
	}
	return nil
}
