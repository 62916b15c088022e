package domain

import "time"

// Garden is a user's plot. Size grows with level and never shrinks;
// level is always derived from experience (see garden.ApplyExperience).
type Garden struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Name             string    `json:"name"`
	SizeX            int       `json:"size_x"`
	SizeY            int       `json:"size_y"`
	Level            int       `json:"level"`
	ExperiencePoints int       `json:"experience_points"`
	CreatedAt        time.Time `json:"created_at"`
}

// Contains reports whether the position lies within the garden bounds.
func (g *Garden) Contains(x, y int) bool {
	return x >= 0 && x < g.SizeX && y >= 0 && y < g.SizeY
}

// Capacity is the total number of plantable cells.
func (g *Garden) Capacity() int {
	return g.SizeX * g.SizeY
}
