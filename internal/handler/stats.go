package handler

import (
	"net/http"

	"github.com/ovelgard/StrideGarden_Go/internal/stats"
)

// HandleGetUserStats handles GET requests for user statistics
// @Summary Get user stats
// @Description Get running, wallet and garden aggregates for a user
// @Tags stats
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.UserStats
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats [get]
func HandleGetUserStats(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDParam(r, w)
		if !ok {
			return
		}

		summary, err := svc.GetUserStats(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get user stats", err)
			return
		}

		respondJSON(w, http.StatusOK, summary)
	}
}
