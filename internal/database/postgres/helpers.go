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
	"github.com/ovelgard/StrideGarden_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// parseUserUUID parses a user ID string to uuid.UUID with consistent error message.
// Use this instead of repeating uuid.Parse + error wrapping throughout the codebase.
func parseUserUUID(userID string) (uuid.UUID, error) {
	u, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id: %w", err)
	}
	return u, nil
}

// parseRowID parses a serial row ID carried as a string in the domain layer.
// A malformed ID can never match a row, so it maps to the given sentinel.
func parseRowID(id string, notFound error) (int, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0, notFound
	}
	return n, nil
}

// beginTx starts a transaction with standard error wrapping
func beginTx(ctx context.Context, db *pgxpool.Pool) (pgx.Tx, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// querier is the query surface shared by pgxpool.Pool and pgx.Tx, so the
// row helpers below serve both pooled reads and in-transaction reads.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const walletColumns = "user_id, balance, total_earned, total_spent, updated_at"

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	var userID uuid.UUID
	if err := row.Scan(&userID, &w.Balance, &w.TotalEarned, &w.TotalSpent, &w.UpdatedAt); err != nil {
		return nil, err
	}
	w.UserID = userID.String()
	return &w, nil
}

const gardenColumns = "garden_id, user_id, garden_name, size_x, size_y, level, experience_points, created_at"

func scanGarden(row pgx.Row) (*domain.Garden, error) {
	var g domain.Garden
	var gardenID int
	var userID uuid.UUID
	if err := row.Scan(&gardenID, &userID, &g.Name, &g.SizeX, &g.SizeY, &g.Level, &g.ExperiencePoints, &g.CreatedAt); err != nil {
		return nil, err
	}
	g.ID = strconv.Itoa(gardenID)
	g.UserID = userID.String()
	return &g, nil
}

const plantColumns = "plant_id, garden_id, seed_id, plant_name, stage, growth_progress, health, position_x, position_y, last_watered, planted_at"

func scanPlant(row pgx.Row) (*domain.Plant, error) {
	var p domain.Plant
	var plantID, gardenID int
	var stage string
	if err := row.Scan(&plantID, &gardenID, &p.SeedID, &p.Name, &stage, &p.GrowthProgress, &p.Health, &p.PositionX, &p.PositionY, &p.LastWatered, &p.PlantedAt); err != nil {
		return nil, err
	}
	p.ID = strconv.Itoa(plantID)
	p.GardenID = strconv.Itoa(gardenID)
	p.Stage = domain.PlantStage(stage)
	return &p, nil
}

const seedColumns = "seed_id, seed_name, description, cost_coins, rarity, plant_type, min_weekly_distance, preferred_intensity, is_available"

func scanSeed(row pgx.Row) (*domain.Seed, error) {
	var s domain.Seed
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.CostCoins, &s.Rarity, &s.PlantType,
		&s.GrowthRequirements.MinWeeklyDistance, &s.GrowthRequirements.PreferredIntensity, &s.IsAvailable); err != nil {
		return nil, err
	}
	return &s, nil
}

// ---- Shared row operations ----
//
// Wallets, gardens and plants are touched from several transaction scopes
// (run logging, purchases, upkeep), so the SQL lives here once and the
// repository types delegate.

func getWallet(ctx context.Context, q querier, userID string, forUpdate bool) (*domain.Wallet, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := "SELECT " + walletColumns + " FROM wallets WHERE user_id = $1"
	if forUpdate {
		query += " FOR UPDATE"
	}

	w, err := scanWallet(q.QueryRow(ctx, query, userUUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrWalletNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return w, nil
}

func insertWallet(ctx context.Context, q querier, w *domain.Wallet) error {
	userUUID, err := parseUserUUID(w.UserID)
	if err != nil {
		return err
	}

	// Two first-time writers can both miss the row; the loser's insert is a
	// no-op and callers re-read the winner's row.
	query := `
		INSERT INTO wallets (user_id, balance, total_earned, total_spent, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := q.Exec(ctx, query, userUUID, w.Balance, w.TotalEarned, w.TotalSpent, w.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

func updateWallet(ctx context.Context, q querier, w *domain.Wallet) error {
	userUUID, err := parseUserUUID(w.UserID)
	if err != nil {
		return err
	}

	query := `
		UPDATE wallets
		SET balance = $2, total_earned = $3, total_spent = $4, updated_at = $5
		WHERE user_id = $1
	`
	tag, err := q.Exec(ctx, query, userUUID, w.Balance, w.TotalEarned, w.TotalSpent, w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrWalletNotFound, w.UserID)
	}
	return nil
}

func getGardenByUser(ctx context.Context, q querier, userID string, forUpdate bool) (*domain.Garden, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := "SELECT " + gardenColumns + " FROM gardens WHERE user_id = $1"
	if forUpdate {
		query += " FOR UPDATE"
	}

	g, err := scanGarden(q.QueryRow(ctx, query, userUUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %s", domain.ErrGardenNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get garden: %w", err)
	}
	return g, nil
}

func insertGarden(ctx context.Context, q querier, g *domain.Garden) error {
	userUUID, err := parseUserUUID(g.UserID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO gardens (user_id, garden_name, size_x, size_y, level, experience_points, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO NOTHING
		RETURNING garden_id
	`
	var gardenID int
	err = q.QueryRow(ctx, query, userUUID, g.Name, g.SizeX, g.SizeY, g.Level, g.ExperiencePoints, g.CreatedAt).Scan(&gardenID)
	if errors.Is(err, pgx.ErrNoRows) {
		// A concurrent writer created the garden first; adopt its row.
		err = q.QueryRow(ctx, "SELECT garden_id FROM gardens WHERE user_id = $1", userUUID).Scan(&gardenID)
	}
	if err != nil {
		return fmt.Errorf("failed to create garden: %w", err)
	}
	g.ID = strconv.Itoa(gardenID)
	return nil
}

func updateGarden(ctx context.Context, q querier, g *domain.Garden) error {
	gardenID, err := parseRowID(g.ID, domain.ErrGardenNotFound)
	if err != nil {
		return err
	}

	query := `
		UPDATE gardens
		SET garden_name = $2, size_x = $3, size_y = $4, level = $5, experience_points = $6, updated_at = NOW()
		WHERE garden_id = $1
	`
	tag, err := q.Exec(ctx, query, gardenID, g.Name, g.SizeX, g.SizeY, g.Level, g.ExperiencePoints)
	if err != nil {
		return fmt.Errorf("failed to save garden: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrGardenNotFound, g.ID)
	}
	return nil
}

func getPlantByID(ctx context.Context, q querier, plantID string, forUpdate bool) (*domain.Plant, error) {
	id, err := parseRowID(plantID, domain.ErrPlantNotFound)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlantNotFound, plantID)
	}

	query := "SELECT " + plantColumns + " FROM plants WHERE plant_id = $1"
	if forUpdate {
		query += " FOR UPDATE"
	}

	p, err := scanPlant(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPlantNotFound, plantID)
		}
		return nil, fmt.Errorf("failed to get plant: %w", err)
	}
	return p, nil
}

// getPlantAt returns nil without error when the cell is empty.
func getPlantAt(ctx context.Context, q querier, gardenID string, x, y int, forUpdate bool) (*domain.Plant, error) {
	id, err := parseRowID(gardenID, domain.ErrGardenNotFound)
	if err != nil {
		return nil, err
	}

	query := "SELECT " + plantColumns + " FROM plants WHERE garden_id = $1 AND position_x = $2 AND position_y = $3"
	if forUpdate {
		query += " FOR UPDATE"
	}

	p, err := scanPlant(q.QueryRow(ctx, query, id, x, y))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get plant at position: %w", err)
	}
	return p, nil
}

func listPlants(ctx context.Context, q querier, gardenID string, forUpdate bool) ([]domain.Plant, error) {
	id, err := parseRowID(gardenID, domain.ErrGardenNotFound)
	if err != nil {
		return nil, err
	}

	query := "SELECT " + plantColumns + " FROM plants WHERE garden_id = $1 ORDER BY plant_id"
	if forUpdate {
		query += " FOR UPDATE"
	}

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}
	defer rows.Close()

	plants := []domain.Plant{}
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plant: %w", err)
		}
		plants = append(plants, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read plants: %w", err)
	}
	return plants, nil
}

func updatePlant(ctx context.Context, q querier, p *domain.Plant) error {
	id, err := parseRowID(p.ID, domain.ErrPlantNotFound)
	if err != nil {
		return err
	}

	query := `
		UPDATE plants
		SET plant_name = $2, stage = $3, growth_progress = $4, health = $5,
		    position_x = $6, position_y = $7, last_watered = $8
		WHERE plant_id = $1
	`
	tag, err := q.Exec(ctx, query, id, p.Name, string(p.Stage), p.GrowthProgress, p.Health, p.PositionX, p.PositionY, p.LastWatered)
	if err != nil {
		return fmt.Errorf("failed to update plant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPlantNotFound, p.ID)
	}
	return nil
}
