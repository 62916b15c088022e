package domain

import "time"

// PlantStage is the ordered lifecycle category of a plant.
// Stages are derived purely from growth progress, never stored independently
// of it (see growth.StageForProgress).
type PlantStage string

const (
	StageSeed     PlantStage = "seed"
	StageSprout   PlantStage = "sprout"
	StageSapling  PlantStage = "sapling"
	StageMature   PlantStage = "mature"
	StageBlooming PlantStage = "blooming"
)

// Plant is a growing plant occupying one cell of a garden.
type Plant struct {
	ID             string     `json:"id"`
	GardenID       string     `json:"garden_id"`
	SeedID         int        `json:"seed_id"`
	Name           string     `json:"name"`
	Stage          PlantStage `json:"stage"`
	GrowthProgress float64    `json:"growth_progress"` // 0.0 to 100.0, never decreases
	Health         float64    `json:"health"`          // informational, no rule consumes it yet
	PositionX      int        `json:"position_x"`
	PositionY      int        `json:"position_y"`
	LastWatered    *time.Time `json:"last_watered,omitempty"`
	PlantedAt      time.Time  `json:"planted_at"`
}
