package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
	"github.com/ovelgard/StrideGarden_Go/internal/repository"
)

type walletRepository struct {
	db *pgxpool.Pool
}

// NewWalletRepository creates a new PostgreSQL wallet repository
func NewWalletRepository(db *pgxpool.Pool) repository.Wallet {
	return &walletRepository{db: db}
}

func (r *walletRepository) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	return getWallet(ctx, r.db, userID, false)
}

func (r *walletRepository) CreateWallet(ctx context.Context, wallet *domain.Wallet) error {
	return insertWallet(ctx, r.db, wallet)
}
