package garden

import "github.com/ovelgard/StrideGarden_Go/internal/domain"

// ApplyExperience grants XP to a garden and recomputes level and size.
// Levels follow floor(xp/1000)+1; a single large grant that crosses several
// boundaries lands directly on the final level. On level-up both dimensions
// are recomputed as min(20, 10+level), so size never shrinks and caps at
// 20x20. Returns true if the garden leveled up.
func ApplyExperience(g *domain.Garden, points int) bool {
	g.ExperiencePoints += points

	newLevel := g.ExperiencePoints/domain.XPPerLevel + 1
	if newLevel <= g.Level {
		return false
	}

	g.Level = newLevel
	size := domain.DefaultGardenSize + g.Level
	if size > domain.MaxGardenSize {
		size = domain.MaxGardenSize
	}
	g.SizeX = size
	g.SizeY = size
	return true
}

// NewGarden returns a fresh level-1 garden with default name and size.
func NewGarden(userID string) *domain.Garden {
	return &domain.Garden{
		UserID: userID,
		Name:   domain.DefaultGardenName,
		SizeX:  domain.DefaultGardenSize,
		SizeY:  domain.DefaultGardenSize,
		Level:  1,
	}
}
