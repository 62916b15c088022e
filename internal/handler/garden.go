package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ovelgard/StrideGarden_Go/internal/garden"
	"github.com/ovelgard/StrideGarden_Go/internal/logger"
)

// RenameGardenRequest represents a request to rename a garden
type RenameGardenRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Name   string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// UpdatePlantRequest represents a rename and/or move of a plant.
// Pointer fields distinguish "leave unchanged" from zero values.
type UpdatePlantRequest struct {
	UserID string  `json:"user_id" validate:"required,uuid"`
	Name   *string `json:"name,omitempty" validate:"omitempty,max=100"`
	X      *int    `json:"x,omitempty" validate:"omitempty,gte=0"`
	Y      *int    `json:"y,omitempty" validate:"omitempty,gte=0"`
}

// HandleGetGarden handles GET requests for a user's garden
// @Summary Get garden
// @Description Get the user's garden and all plants in it
// @Tags garden
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} garden.View
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /garden [get]
func HandleGetGarden(svc garden.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDParam(r, w)
		if !ok {
			return
		}

		view, err := svc.GetGarden(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get garden", err)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}

// HandleRenameGarden handles PUT requests to rename a garden
// @Summary Rename garden
// @Description Change the display name of the user's garden
// @Tags garden
// @Accept json
// @Produce json
// @Param request body RenameGardenRequest true "New name"
// @Success 200 {object} domain.Garden
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /garden [put]
func HandleRenameGarden(svc garden.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RenameGardenRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Rename garden"); err != nil {
			return
		}

		g, err := svc.RenameGarden(r.Context(), req.UserID, req.Name)
		if err != nil {
			respondServiceError(w, r, "Rename garden", err)
			return
		}

		log.Info("Garden renamed", "user_id", req.UserID, "name", req.Name)
		respondJSON(w, http.StatusOK, g)
	}
}

// HandleUpdatePlant handles PUT requests to rename or move a plant
// @Summary Update plant
// @Description Rename a plant and/or move it to a free cell
// @Tags garden
// @Accept json
// @Produce json
// @Param plantID path string true "Plant ID"
// @Param request body UpdatePlantRequest true "Changes to apply"
// @Success 200 {object} domain.Plant
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /garden/plants/{plantID} [put]
func HandleUpdatePlant(svc garden.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		plantID := chi.URLParam(r, "plantID")

		var req UpdatePlantRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update plant"); err != nil {
			return
		}

		plant, err := svc.UpdatePlant(r.Context(), req.UserID, plantID, garden.PlantUpdate{
			Name: req.Name,
			X:    req.X,
			Y:    req.Y,
		})
		if err != nil {
			respondServiceError(w, r, "Update plant", err)
			return
		}

		log.Info("Plant updated", "user_id", req.UserID, "plant_id", plantID)
		respondJSON(w, http.StatusOK, plant)
	}
}
