package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
)

func TestCoinsForRun(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		intensity  domain.Intensity
		expected   int
	}{
		{
			name:       "short low intensity run",
			distanceKm: 5.0,
			intensity:  domain.IntensityLow,
			expected:   50, // floor(50 * 1.0)
		},
		{
			name:       "fractional distance floors the base",
			distanceKm: 5.29,
			intensity:  domain.IntensityLow,
			expected:   52, // floor(52.9) = 52
		},
		{
			name:       "moderate multiplier floors the total",
			distanceKm: 5.0,
			intensity:  domain.IntensityModerate,
			expected:   60, // floor(50 * 1.2)
		},
		{
			name:       "high intensity",
			distanceKm: 3.0,
			intensity:  domain.IntensityHigh,
			expected:   45, // floor(30 * 1.5)
		},
		{
			name:       "extreme intensity doubles",
			distanceKm: 7.0,
			intensity:  domain.IntensityExtreme,
			expected:   140, // floor(70 * 2.0)
		},
		{
			name:       "10K threshold adds 50",
			distanceKm: 10.0,
			intensity:  domain.IntensityLow,
			expected:   150, // 100 + 50
		},
		{
			name:       "just below 10K gets no bonus",
			distanceKm: 9.99,
			intensity:  domain.IntensityLow,
			expected:   99, // floor(99.9)
		},
		{
			name:       "half marathon at moderate - bonuses are cumulative",
			distanceKm: 21.1,
			intensity:  domain.IntensityModerate,
			expected:   403, // floor(211 * 1.2) = 253, + 50 + 100
		},
		{
			name:       "marathon collects all three bonuses",
			distanceKm: 42.2,
			intensity:  domain.IntensityLow,
			expected:   772, // 422 + 50 + 100 + 200
		},
		{
			name:       "marathon at extreme",
			distanceKm: 42.2,
			intensity:  domain.IntensityExtreme,
			expected:   1194, // floor(422 * 2.0) = 844, + 350
		},
		{
			name:       "max distance",
			distanceKm: 200.0,
			intensity:  domain.IntensityHigh,
			expected:   3350, // floor(2000 * 1.5) = 3000, + 350
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CoinsForRun(tt.distanceKm, tt.intensity))
		})
	}
}

func TestExperienceForRun(t *testing.T) {
	assert.Equal(t, 211, ExperienceForRun(21.1))
	assert.Equal(t, 50, ExperienceForRun(5.0))
	assert.Equal(t, 42, ExperienceForRun(4.25), "XP floors fractional kilometers")
	assert.Equal(t, 0, ExperienceForRun(0.05))
}

func TestIntensityMultipliers(t *testing.T) {
	// The reward and growth formulas share this table; keep it pinned.
	assert.Equal(t, 1.0, domain.IntensityLow.Multiplier())
	assert.Equal(t, 1.2, domain.IntensityModerate.Multiplier())
	assert.Equal(t, 1.5, domain.IntensityHigh.Multiplier())
	assert.Equal(t, 2.0, domain.IntensityExtreme.Multiplier())
}
