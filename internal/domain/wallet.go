package domain

import "time"

// Wallet is a user's coin ledger. The balance always equals
// TotalEarned - TotalSpent; both cumulative counters only grow.
type Wallet struct {
	UserID      string    `json:"user_id"`
	Balance     int       `json:"balance"`
	TotalEarned int       `json:"total_earned"`
	TotalSpent  int       `json:"total_spent"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AddCoins credits the wallet. Amount is assumed non-negative.
func (w *Wallet) AddCoins(amount int, now time.Time) {
	w.Balance += amount
	w.TotalEarned += amount
	w.UpdatedAt = now
}

// SpendCoins debits the wallet if the balance covers the amount.
// Returns false without mutating anything when funds are insufficient.
func (w *Wallet) SpendCoins(amount int, now time.Time) bool {
	if w.Balance < amount {
		return false
	}
	w.Balance -= amount
	w.TotalSpent += amount
	w.UpdatedAt = now
	return true
}
