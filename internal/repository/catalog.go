package repository

import (
	"context"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
)

// Catalog defines persistence for the static seed catalog.
type Catalog interface {
	ListAvailableSeeds(ctx context.Context) ([]domain.Seed, error)
	GetSeedByID(ctx context.Context, seedID int) (*domain.Seed, error)
	BeginTx(ctx context.Context) (CatalogTx, error)
}

// CatalogTx is the transaction scope for the idempotent catalog bootstrap:
// the existence check and the inserts it guards run as one unit.
type CatalogTx interface {
	Tx
	GetSeedByName(ctx context.Context, name string) (*domain.Seed, error)
	InsertSeed(ctx context.Context, seed *domain.Seed) error
}
