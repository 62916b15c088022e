package domain

// RunningStats aggregates a user's run history. All values are derived
// from stored runs on every read; nothing here is persisted.
type RunningStats struct {
	TotalRuns           int     `json:"total_runs"`
	TotalDistanceKm     float64 `json:"total_distance_km"`
	TotalDurationMin    int     `json:"total_duration_minutes"`
	AverageDistanceKm   float64 `json:"average_distance_km"`
	AveragePaceMinPerKm float64 `json:"average_pace_min_per_km"`
}

// GardenStats summarizes garden progression and plant population.
type GardenStats struct {
	Level            int                `json:"level"`
	ExperiencePoints int                `json:"experience_points"`
	TotalPlants      int                `json:"total_plants"`
	PlantsByStage    map[PlantStage]int `json:"plants_by_stage"`
}

// UserStats is the full derived snapshot returned by the stats endpoint.
type UserStats struct {
	UserID  string       `json:"user_id"`
	Running RunningStats `json:"running_stats"`
	Wallet  *Wallet      `json:"wallet,omitempty"`
	Garden  GardenStats  `json:"garden"`
}
