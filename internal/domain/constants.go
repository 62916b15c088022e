package domain

// Run validation bounds
const (
	MaxRunDistanceKm      = 200.0
	MaxRunDurationMinutes = 1440 // 24 hours
)

// Garden progression
const (
	DefaultGardenName = "My Mystical Garden"
	DefaultGardenSize = 10
	MaxGardenSize     = 20
	XPPerLevel        = 1000
)

// Plant defaults
const (
	MaxGrowthProgress = 100.0
	FullHealth        = 100.0
)

// Pagination limits for run history
const (
	DefaultRunsPerPage = 20
	MaxRunsPerPage     = 100
)
