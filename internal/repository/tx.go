package repository

import "context"

// Tx defines the interface common to all transactional repositories.
// Concrete transaction interfaces embed it alongside their entity operations.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
