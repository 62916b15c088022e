// Package wallet exposes the coin ledger. Earning and spending happen inside
// the activity and nursery transactions with the wallet row locked; this
// package owns reads and lazy creation.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
	"github.com/ovelgard/StrideGarden_Go/internal/logger"
	"github.com/ovelgard/StrideGarden_Go/internal/repository"
)

// Service defines the interface for wallet operations
type Service interface {
	// GetWallet returns the user's wallet, creating an empty one on first access.
	GetWallet(ctx context.Context, userID string) (*domain.Wallet, error)
}

type service struct {
	repo repository.Wallet
	now  func() time.Time
}

// NewService creates a new wallet service
func NewService(repo repository.Wallet) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	log := logger.FromContext(ctx)

	w, err := s.repo.GetWallet(ctx, userID)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, domain.ErrWalletNotFound) {
		log.Error("Failed to get wallet", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	fresh := &domain.Wallet{UserID: userID, UpdatedAt: s.now()}
	if err := s.repo.CreateWallet(ctx, fresh); err != nil {
		log.Error("Failed to create wallet", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	log.Info("Wallet created", "user_id", userID)
	return fresh, nil
}
