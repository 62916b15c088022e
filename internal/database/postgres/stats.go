package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
	"github.com/ovelgard/StrideGarden_Go/internal/repository"
)

type statsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new PostgreSQL stats repository
func NewStatsRepository(db *pgxpool.Pool) repository.Stats {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetRunTotals(ctx context.Context, userID string) (*repository.RunTotals, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT COUNT(*), COALESCE(SUM(distance_km), 0), COALESCE(SUM(duration_minutes), 0)
		FROM runs
		WHERE user_id = $1
	`
	var totals repository.RunTotals
	if err := r.db.QueryRow(ctx, query, userUUID).Scan(&totals.TotalRuns, &totals.TotalDistanceKm, &totals.TotalDurationMin); err != nil {
		return nil, fmt.Errorf("failed to get run totals: %w", err)
	}
	return &totals, nil
}

func (r *statsRepository) CountPlantsByStage(ctx context.Context, gardenID string) (map[domain.PlantStage]int, error) {
	id, err := parseRowID(gardenID, domain.ErrGardenNotFound)
	if err != nil {
		return nil, err
	}

	query := "SELECT stage, COUNT(*) FROM plants WHERE garden_id = $1 GROUP BY stage"
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to count plants by stage: %w", err)
	}
	defer rows.Close()

	counts := map[domain.PlantStage]int{}
	for rows.Next() {
		var stage string
		var count int
		if err := rows.Scan(&stage, &count); err != nil {
			return nil, fmt.Errorf("failed to scan stage count: %w", err)
		}
		counts[domain.PlantStage(stage)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stage counts: %w", err)
	}
	return counts, nil
}
