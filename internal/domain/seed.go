package domain

// Rarity buckets for seeds and harvested flowers.
const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// GrowthRequirements is descriptive catalog metadata attached to a seed.
// It is stored and returned to clients but not enforced by any gameplay rule.
type GrowthRequirements struct {
	MinWeeklyDistance  int    `json:"min_weekly_distance"`
	PreferredIntensity string `json:"preferred_intensity"`
}

// Seed is a static catalog definition shared by all users.
type Seed struct {
	ID                 int                `json:"id"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	CostCoins          int                `json:"cost_coins"`
	Rarity             string             `json:"rarity"`
	PlantType          string             `json:"plant_type"`
	GrowthRequirements GrowthRequirements `json:"growth_requirements"`
	IsAvailable        bool               `json:"is_available"`
}
