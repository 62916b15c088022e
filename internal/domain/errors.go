package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Validation errors
	ErrMsgInvalidIntensity = "invalid intensity level"
	ErrMsgInvalidDistance  = "distance must be positive and at most 200 km"
	ErrMsgInvalidDuration  = "duration must be positive and at most 1440 minutes"

	// Catalog errors
	ErrMsgSeedNotFound = "seed not found"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Wallet errors
	ErrMsgWalletNotFound = "wallet not found"

	// Garden errors
	ErrMsgGardenNotFound      = "garden not found"
	ErrMsgPositionOutOfBounds = "position outside garden bounds"
	ErrMsgPositionOccupied    = "position already occupied"

	// Plant errors
	ErrMsgPlantNotFound    = "plant not found"
	ErrMsgPlantNotOwned    = "plant not owned by user"
	ErrMsgPlantNotBlooming = "plant is not blooming"

	// Inventory errors
	ErrMsgNoSeedsInInventory = "no seeds of that type in inventory"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Validation errors
	ErrInvalidIntensity = errors.New(ErrMsgInvalidIntensity)
	ErrInvalidDistance  = errors.New(ErrMsgInvalidDistance)
	ErrInvalidDuration  = errors.New(ErrMsgInvalidDuration)

	// Catalog errors
	ErrSeedNotFound = errors.New(ErrMsgSeedNotFound)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrWalletNotFound    = errors.New(ErrMsgWalletNotFound)

	// Garden errors
	ErrGardenNotFound      = errors.New(ErrMsgGardenNotFound)
	ErrPositionOutOfBounds = errors.New(ErrMsgPositionOutOfBounds)
	ErrPositionOccupied    = errors.New(ErrMsgPositionOccupied)

	// Plant errors
	ErrPlantNotFound    = errors.New(ErrMsgPlantNotFound)
	ErrPlantNotOwned    = errors.New(ErrMsgPlantNotOwned)
	ErrPlantNotBlooming = errors.New(ErrMsgPlantNotBlooming)

	// Inventory errors
	ErrNoSeedsInInventory = errors.New(ErrMsgNoSeedsInInventory)
)
