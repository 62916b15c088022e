package repository

import (
	"context"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
)

// RunTotals are the raw aggregates over a user's run history.
type RunTotals struct {
	TotalRuns        int
	TotalDistanceKm  float64
	TotalDurationMin int
}

// Stats defines the read-only aggregate queries behind the stats endpoint.
// Everything is derived from stored rows at read time; nothing is cached
// or maintained incrementally.
type Stats interface {
	GetRunTotals(ctx context.Context, userID string) (*RunTotals, error)
	CountPlantsByStage(ctx context.Context, gardenID string) (map[domain.PlantStage]int, error)
}
