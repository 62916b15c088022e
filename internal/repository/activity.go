package repository

import (
	"context"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
)

// Activity defines persistence for run logging and run history.
type Activity interface {
	BeginTx(ctx context.Context) (ActivityTx, error)
	ListRuns(ctx context.Context, userID string, limit, offset int) ([]domain.Run, error)
	CountRuns(ctx context.Context, userID string) (int, error)
}

// ActivityTx is the transaction scope for logging one run. Everything a run
// touches (run row, wallet, garden, every plant) commits as one unit.
// The ForUpdate getters take row locks so concurrent runs from the same user
// serialize instead of racing the balance and XP updates.
type ActivityTx interface {
	Tx
	InsertRun(ctx context.Context, run *domain.Run) error
	GetWalletForUpdate(ctx context.Context, userID string) (*domain.Wallet, error)
	CreateWallet(ctx context.Context, wallet *domain.Wallet) error
	SaveWallet(ctx context.Context, wallet *domain.Wallet) error
	GetGardenForUpdate(ctx context.Context, userID string) (*domain.Garden, error)
	CreateGarden(ctx context.Context, garden *domain.Garden) error
	SaveGarden(ctx context.Context, garden *domain.Garden) error
	ListPlantsForUpdate(ctx context.Context, gardenID string) ([]domain.Plant, error)
	SavePlantGrowth(ctx context.Context, plant *domain.Plant) error
}
