// Package reward contains the pure reward curves that convert a run into
// coins and garden experience. The formulas are exact gameplay contracts;
// changing them changes every wallet in the system.
package reward

import (
	"math"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
)

// Milestone distance thresholds (km) and their flat coin bonuses.
// Bonuses are cumulative: a marathon run collects all three.
const (
	TenKDistanceKm         = 10.0
	HalfMarathonDistanceKm = 21.1
	MarathonDistanceKm     = 42.2

	TenKBonus         = 50
	HalfMarathonBonus = 100
	MarathonBonus     = 200
)

// BaseCoinsPerKm is the pre-multiplier coin rate.
const BaseCoinsPerKm = 10

// ExperiencePerKm is the garden XP rate, granted once per run.
const ExperiencePerKm = 10

// CoinsForRun computes the coins earned for a run. Inputs are assumed
// pre-validated (0 < distanceKm <= 200).
//
// base = floor(d*10), total = floor(base * intensity multiplier),
// plus milestone bonuses.
func CoinsForRun(distanceKm float64, intensity domain.Intensity) int {
	base := int(math.Floor(distanceKm * BaseCoinsPerKm))
	total := int(math.Floor(float64(base) * intensity.Multiplier()))

	if distanceKm >= TenKDistanceKm {
		total += TenKBonus
	}
	if distanceKm >= HalfMarathonDistanceKm {
		total += HalfMarathonBonus
	}
	if distanceKm >= MarathonDistanceKm {
		total += MarathonBonus
	}

	return total
}

// ExperienceForRun computes the garden experience granted for a run.
// Intensity does not factor into XP, only distance.
func ExperienceForRun(distanceKm float64) int {
	return int(math.Floor(distanceKm * ExperiencePerKm))
}
