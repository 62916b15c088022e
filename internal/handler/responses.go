package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ovelgard/StrideGarden_Go/internal/domain"
	"github.com/ovelgard/StrideGarden_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and sends the mapped
// status and user-facing message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceError(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// Validation messages
	ErrMsgInvalidIntensityError = "Invalid intensity. Use: low, moderate, high, extreme"
	ErrMsgInvalidDistanceError  = "Distance must be positive and realistic"
	ErrMsgInvalidDurationError  = "Duration must be positive and realistic"
	ErrMsgOutOfBoundsError      = "Position is outside the garden"

	// Economy messages
	ErrMsgNotEnoughCoinsError = "Not enough coins"
	ErrMsgNoSeedsError        = "You don't have that seed. Buy one first"

	// Lookup messages
	ErrMsgSeedNotFoundError   = "Seed not found"
	ErrMsgWalletNotFoundError = "Wallet not found"
	ErrMsgGardenNotFoundError = "Garden not found"
	ErrMsgPlantNotFoundError  = "Plant not found"

	// State messages
	ErrMsgPositionOccupiedError = "That spot is already taken"
	ErrMsgNotBloomingError      = "Plant is not ready to harvest"
	ErrMsgPlantNotOwnedError    = "That plant is not yours"
)

// mapServiceError maps domain errors to user-friendly HTTP responses.
// Validation problems and insufficient funds are 400, missing resources 404,
// access to another user's plant 403, and state conflicts (occupied cell,
// not blooming) 409.
func mapServiceError(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidIntensity):
		return http.StatusBadRequest, ErrMsgInvalidIntensityError
	case errors.Is(err, domain.ErrInvalidDistance):
		return http.StatusBadRequest, ErrMsgInvalidDistanceError
	case errors.Is(err, domain.ErrInvalidDuration):
		return http.StatusBadRequest, ErrMsgInvalidDurationError
	case errors.Is(err, domain.ErrPositionOutOfBounds):
		return http.StatusBadRequest, ErrMsgOutOfBoundsError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughCoinsError
	case errors.Is(err, domain.ErrSeedNotFound):
		return http.StatusNotFound, ErrMsgSeedNotFoundError
	case errors.Is(err, domain.ErrWalletNotFound):
		return http.StatusNotFound, ErrMsgWalletNotFoundError
	case errors.Is(err, domain.ErrGardenNotFound):
		return http.StatusNotFound, ErrMsgGardenNotFoundError
	case errors.Is(err, domain.ErrPlantNotFound):
		return http.StatusNotFound, ErrMsgPlantNotFoundError
	case errors.Is(err, domain.ErrPlantNotOwned):
		return http.StatusForbidden, ErrMsgPlantNotOwnedError
	case errors.Is(err, domain.ErrPositionOccupied):
		return http.StatusConflict, ErrMsgPositionOccupiedError
	case errors.Is(err, domain.ErrPlantNotBlooming):
		return http.StatusConflict, ErrMsgNotBloomingError
	case errors.Is(err, domain.ErrNoSeedsInInventory):
		return http.StatusConflict, ErrMsgNoSeedsError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
