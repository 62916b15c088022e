package repository

import (
	"context"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
)

// Wallet defines read-side persistence for coin wallets. Wallet mutation
// always happens inside an Activity or Nursery transaction with the row
// locked; this interface only serves wallet reads and lazy creation.
type Wallet interface {
	GetWallet(ctx context.Context, userID string) (*domain.Wallet, error)
	CreateWallet(ctx context.Context, wallet *domain.Wallet) error
}
