// Package growth implements the plant growth model: how one run's effort
// advances a plant's growth progress and lifecycle stage.
package growth

import (
	"time"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
)

// GrowthPointsPerKm is the pre-multiplier growth rate applied per kilometer.
const GrowthPointsPerKm = 2.0

// Stage thresholds on absolute growth progress.
const (
	BloomingThreshold = 80.0
	MatureThreshold   = 60.0
	SaplingThreshold  = 40.0
	SproutThreshold   = 20.0
)

// Boost computes the growth points contributed by a run.
func Boost(distanceKm float64, intensity domain.Intensity) float64 {
	return distanceKm * GrowthPointsPerKm * intensity.Multiplier()
}

// StageForProgress derives the lifecycle stage from absolute progress.
// It is a pure function of progress, not a transition table; callers
// recompute it fully after every change.
func StageForProgress(progress float64) domain.PlantStage {
	switch {
	case progress >= BloomingThreshold:
		return domain.StageBlooming
	case progress >= MatureThreshold:
		return domain.StageMature
	case progress >= SaplingThreshold:
		return domain.StageSapling
	case progress >= SproutThreshold:
		return domain.StageSprout
	default:
		return domain.StageSeed
	}
}

// Water applies one run's stimulus to a plant. Progress is monotonic and
// capped at 100; a fully grown plant still gets its watered timestamp
// refreshed.
func Water(p *domain.Plant, distanceKm float64, intensity domain.Intensity, now time.Time) {
	progress := p.GrowthProgress + Boost(distanceKm, intensity)
	if progress > domain.MaxGrowthProgress {
		progress = domain.MaxGrowthProgress
	}
	p.GrowthProgress = progress
	p.Stage = StageForProgress(progress)
	p.LastWatered = &now
}
