package domain

import (
	"fmt"
	"strings"
)

// Intensity is the categorical effort level of a run.
type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
	IntensityExtreme  Intensity = "extreme"
)

// ParseIntensity converts a token into an Intensity, case-insensitively.
// Unknown tokens are rejected with ErrInvalidIntensity.
func ParseIntensity(token string) (Intensity, error) {
	switch Intensity(strings.ToLower(token)) {
	case IntensityLow:
		return IntensityLow, nil
	case IntensityModerate:
		return IntensityModerate, nil
	case IntensityHigh:
		return IntensityHigh, nil
	case IntensityExtreme:
		return IntensityExtreme, nil
	default:
		return "", fmt.Errorf("%w: %q (use: low, moderate, high, extreme)", ErrInvalidIntensity, token)
	}
}

// Multiplier returns the reward/growth multiplier for the intensity.
// The same table drives both coin rewards and plant growth.
func (i Intensity) Multiplier() float64 {
	switch i {
	case IntensityModerate:
		return 1.2
	case IntensityHigh:
		return 1.5
	case IntensityExtreme:
		return 2.0
	default:
		return 1.0
	}
}

func (i Intensity) String() string {
	return string(i)
}
