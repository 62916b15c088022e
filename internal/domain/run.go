package domain

import "time"

// Run is an immutable record of one logged running activity.
// CoinsEarned is computed once at creation and never recomputed.
type Run struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	DistanceKm      float64   `json:"distance_km"`
	DurationMinutes int       `json:"duration_minutes"`
	Intensity       Intensity `json:"intensity"`
	PaceMinPerKm    float64   `json:"pace_min_per_km"`
	CoinsEarned     int       `json:"coins_earned"`
	CreatedAt       time.Time `json:"created_at"`
}
