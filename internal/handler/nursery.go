package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ovelgard/StrideGarden_Go/internal/logger"
	"github.com/ovelgard/StrideGarden_Go/internal/nursery"
)

// PurchaseSeedRequest represents a request to buy one seed into inventory
type PurchaseSeedRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	SeedID int    `json:"seed_id" validate:"required,gt=0"`
}

// PlantSeedRequest represents a request to plant a seed from inventory.
// X and Y are pointers so that position (0,0) survives the required check.
type PlantSeedRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	SeedID int    `json:"seed_id" validate:"required,gt=0"`
	X      *int   `json:"x" validate:"required,gte=0"`
	Y      *int   `json:"y" validate:"required,gte=0"`
	Name   string `json:"name,omitempty" validate:"max=100"`
}

// HarvestRequest identifies the harvesting user
type HarvestRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// HandlePurchaseSeed handles POST requests to buy a seed
// @Summary Purchase seed
// @Description Spend coins to add one seed to the user's inventory
// @Tags seeds
// @Accept json
// @Produce json
// @Param request body PurchaseSeedRequest true "Purchase details"
// @Success 200 {object} nursery.PurchaseResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /seeds/purchase [post]
func HandlePurchaseSeed(svc nursery.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req PurchaseSeedRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Purchase seed"); err != nil {
			return
		}

		result, err := svc.PurchaseSeed(r.Context(), req.UserID, req.SeedID)
		if err != nil {
			respondServiceError(w, r, "Purchase seed", err)
			return
		}

		log.Info("Seed purchased", "user_id", req.UserID, "seed_id", req.SeedID)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandlePlantSeed handles POST requests to plant a seed
// @Summary Plant seed
// @Description Plant a seed from inventory into a garden cell
// @Tags garden
// @Accept json
// @Produce json
// @Param request body PlantSeedRequest true "Planting details"
// @Success 201 {object} domain.Plant
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /garden/plants [post]
func HandlePlantSeed(svc nursery.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req PlantSeedRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Plant seed"); err != nil {
			return
		}

		plant, err := svc.PlantSeed(r.Context(), req.UserID, req.SeedID, *req.X, *req.Y, req.Name)
		if err != nil {
			respondServiceError(w, r, "Plant seed", err)
			return
		}

		log.Info("Seed planted", "user_id", req.UserID, "plant_id", plant.ID)
		respondJSON(w, http.StatusCreated, plant)
	}
}

// HandleHarvestPlant handles POST requests to harvest a blooming plant
// @Summary Harvest plant
// @Description Harvest a blooming plant into the flower collection
// @Tags garden
// @Accept json
// @Produce json
// @Param plantID path string true "Plant ID"
// @Param request body HarvestRequest true "Harvesting user"
// @Success 200 {object} domain.FlowerInventoryEntry
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /garden/plants/{plantID}/harvest [post]
func HandleHarvestPlant(svc nursery.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		plantID := chi.URLParam(r, "plantID")

		var req HarvestRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Harvest plant"); err != nil {
			return
		}

		entry, err := svc.HarvestPlant(r.Context(), req.UserID, plantID)
		if err != nil {
			respondServiceError(w, r, "Harvest plant", err)
			return
		}

		log.Info("Plant harvested", "user_id", req.UserID, "plant_id", plantID)
		respondJSON(w, http.StatusOK, entry)
	}
}

// HandleDeletePlant handles DELETE requests to abandon a plant
// @Summary Delete plant
// @Description Remove a plant without harvesting it
// @Tags garden
// @Produce json
// @Param plantID path string true "Plant ID"
// @Param user_id query string true "User ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /garden/plants/{plantID} [delete]
func HandleDeletePlant(svc nursery.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		plantID := chi.URLParam(r, "plantID")

		userID, ok := GetUserIDParam(r, w)
		if !ok {
			return
		}

		if err := svc.DeletePlant(r.Context(), userID, plantID); err != nil {
			respondServiceError(w, r, "Delete plant", err)
			return
		}

		log.Info("Plant deleted", "user_id", userID, "plant_id", plantID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPlantDeletedSuccess})
	}
}

// HandleGetSeedInventory handles GET requests for unplanted seeds
// @Summary Get seed inventory
// @Description Get the user's unplanted seeds
// @Tags inventory
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {array} domain.SeedInventoryEntry
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventory/seeds [get]
func HandleGetSeedInventory(svc nursery.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDParam(r, w)
		if !ok {
			return
		}

		entries, err := svc.GetSeedInventory(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get seed inventory", err)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}

// HandleGetFlowerInventory handles GET requests for harvested flowers
// @Summary Get flower inventory
// @Description Get the user's harvested flower collection
// @Tags inventory
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {array} domain.FlowerInventoryEntry
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventory/flowers [get]
func HandleGetFlowerInventory(svc nursery.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDParam(r, w)
		if !ok {
			return
		}

		entries, err := svc.GetFlowerInventory(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get flower inventory", err)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}
