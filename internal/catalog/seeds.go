package catalog

import "github.com/ovelgard/StrideGarden_Go/internal/domain"

// DefaultSeeds is the fixed bootstrap catalog. Names are the idempotency key:
// the seeder only inserts definitions whose name is absent, backed by the
// uniqueness constraint on seed_name.
var DefaultSeeds = []domain.Seed{
	{
		Name:        "Mystic Rose",
		Description: "A beautiful rose that blooms with magical energy. Requires consistent running to flourish.",
		CostCoins:   50,
		Rarity:      domain.RarityCommon,
		PlantType:   "flower",
		GrowthRequirements: domain.GrowthRequirements{
			MinWeeklyDistance:  10,
			PreferredIntensity: "moderate",
		},
		IsAvailable: true,
	},
	{
		Name:        "Runner's Mint",
		Description: "An energizing herb that thrives on high-intensity workouts.",
		CostCoins:   75,
		Rarity:      domain.RarityCommon,
		PlantType:   "herb",
		GrowthRequirements: domain.GrowthRequirements{
			MinWeeklyDistance:  15,
			PreferredIntensity: "high",
		},
		IsAvailable: true,
	},
	{
		Name:        "Endurance Oak",
		Description: "A mighty oak tree that grows stronger with long-distance runs.",
		CostCoins:   150,
		Rarity:      domain.RarityRare,
		PlantType:   "tree",
		GrowthRequirements: domain.GrowthRequirements{
			MinWeeklyDistance:  25,
			PreferredIntensity: "low",
		},
		IsAvailable: true,
	},
	{
		Name:        "Speed Lotus",
		Description: "An exotic lotus that responds to bursts of extreme intensity.",
		CostCoins:   200,
		Rarity:      domain.RarityRare,
		PlantType:   "flower",
		GrowthRequirements: domain.GrowthRequirements{
			MinWeeklyDistance:  20,
			PreferredIntensity: "extreme",
		},
		IsAvailable: true,
	},
	{
		Name:        "Phoenix Fern",
		Description: "A legendary fern that only grows for the most dedicated runners.",
		CostCoins:   500,
		Rarity:      domain.RarityEpic,
		PlantType:   "fern",
		GrowthRequirements: domain.GrowthRequirements{
			MinWeeklyDistance:  50,
			PreferredIntensity: "high",
		},
		IsAvailable: true,
	},
	{
		Name:        "Celestial Bamboo",
		Description: "Divine bamboo that reaches toward the heavens with every mile you run.",
		CostCoins:   1000,
		Rarity:      domain.RarityLegendary,
		PlantType:   "bamboo",
		GrowthRequirements: domain.GrowthRequirements{
			MinWeeklyDistance:  100,
			PreferredIntensity: "moderate",
		},
		IsAvailable: true,
	},
}
