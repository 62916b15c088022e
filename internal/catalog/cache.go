package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
)

// Cache defaults. The catalog is read-mostly static data, so a short TTL is
// only there to pick up availability flips without a restart.
const (
	DefaultCacheSize = 128
	DefaultCacheTTL  = 5 * time.Minute
)

// seedCache is an in-memory LRU for seed-by-ID lookups. Every purchase,
// plant and harvest resolves a seed, and the catalog changes essentially
// never, so this keeps the hot path off the database.
type seedCache struct {
	lru *expirable.LRU[int, *domain.Seed]
}

func newSeedCache(size int, ttl time.Duration) *seedCache {
	return &seedCache{
		lru: expirable.NewLRU[int, *domain.Seed](size, nil, ttl),
	}
}

func (c *seedCache) Get(seedID int) (*domain.Seed, bool) {
	return c.lru.Get(seedID)
}

func (c *seedCache) Set(seed *domain.Seed) {
	c.lru.Add(seed.ID, seed)
}

// Clear removes all entries, used after catalog bootstrap.
func (c *seedCache) Clear() {
	c.lru.Purge()
}
