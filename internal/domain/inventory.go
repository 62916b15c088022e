package domain

// SeedInventoryEntry counts unplanted seeds a user owns.
// At most one entry exists per (user, seed); the row is removed
// when the quantity reaches zero.
type SeedInventoryEntry struct {
	UserID   string `json:"user_id"`
	SeedID   int    `json:"seed_id"`
	SeedName string `json:"seed_name,omitempty"`
	Quantity int    `json:"quantity"`
}

// FlowerInventoryEntry counts harvested plants. Entries are keyed by
// (user, name, plant type, rarity); harvesting the same combination
// again increments the quantity.
type FlowerInventoryEntry struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	PlantType string `json:"plant_type"`
	Rarity    string `json:"rarity"`
	Quantity  int    `json:"quantity"`
}
