package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
	"github.com/ovelgard/StrideGarden_Go/internal/repository"
)

type activityRepository struct {
	db *pgxpool.Pool
}

// NewActivityRepository creates a new PostgreSQL activity repository
func NewActivityRepository(db *pgxpool.Pool) repository.Activity {
	return &activityRepository{db: db}
}

func (r *activityRepository) BeginTx(ctx context.Context) (repository.ActivityTx, error) {
	tx, err := beginTx(ctx, r.db)
	if err != nil {
		return nil, err
	}
	return &activityTx{tx: tx}, nil
}

func (r *activityRepository) ListRuns(ctx context.Context, userID string, limit, offset int) ([]domain.Run, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT run_id, user_id, distance_km, duration_minutes, intensity, pace_min_per_km, coins_earned, created_at
		FROM runs
		WHERE user_id = $1
		ORDER BY created_at DESC, run_id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userUUID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	runs := []domain.Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}
	return runs, nil
}

func (r *activityRepository) CountRuns(ctx context.Context, userID string) (int, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM runs WHERE user_id = $1", userUUID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return count, nil
}

func scanRun(row pgx.Row) (*domain.Run, error) {
	var run domain.Run
	var runID int
	var userID uuid.UUID
	var intensity string
	if err := row.Scan(&runID, &userID, &run.DistanceKm, &run.DurationMinutes, &intensity, &run.PaceMinPerKm, &run.CoinsEarned, &run.CreatedAt); err != nil {
		return nil, err
	}
	run.ID = strconv.Itoa(runID)
	run.UserID = userID.String()
	run.Intensity = domain.Intensity(intensity)
	return &run, nil
}

// activityTx is the transaction scope for logging one run.
type activityTx struct {
	tx pgx.Tx
}

func (t *activityTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *activityTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *activityTx) InsertRun(ctx context.Context, run *domain.Run) error {
	userUUID, err := parseUserUUID(run.UserID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO runs (user_id, distance_km, duration_minutes, intensity, pace_min_per_km, coins_earned, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING run_id
	`
	var runID int
	if err := t.tx.QueryRow(ctx, query, userUUID, run.DistanceKm, run.DurationMinutes,
		string(run.Intensity), run.PaceMinPerKm, run.CoinsEarned, run.CreatedAt).Scan(&runID); err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	run.ID = strconv.Itoa(runID)
	return nil
}

func (t *activityTx) GetWalletForUpdate(ctx context.Context, userID string) (*domain.Wallet, error) {
	return getWallet(ctx, t.tx, userID, true)
}

func (t *activityTx) CreateWallet(ctx context.Context, wallet *domain.Wallet) error {
	return insertWallet(ctx, t.tx, wallet)
}

func (t *activityTx) SaveWallet(ctx context.Context, wallet *domain.Wallet) error {
	return updateWallet(ctx, t.tx, wallet)
}

func (t *activityTx) GetGardenForUpdate(ctx context.Context, userID string) (*domain.Garden, error) {
	return getGardenByUser(ctx, t.tx, userID, true)
}

func (t *activityTx) CreateGarden(ctx context.Context, garden *domain.Garden) error {
	return insertGarden(ctx, t.tx, garden)
}

func (t *activityTx) SaveGarden(ctx context.Context, garden *domain.Garden) error {
	return updateGarden(ctx, t.tx, garden)
}

func (t *activityTx) ListPlantsForUpdate(ctx context.Context, gardenID string) ([]domain.Plant, error) {
	return listPlants(ctx, t.tx, gardenID, true)
}

func (t *activityTx) SavePlantGrowth(ctx context.Context, plant *domain.Plant) error {
	return updatePlant(ctx, t.tx, plant)
}
