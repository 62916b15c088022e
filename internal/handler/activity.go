package handler

import (
	"net/http"
	"strconv"

	"github.com/ovelgard/StrideGarden_Go/internal/activity"
	"github.com/ovelgard/StrideGarden_Go/internal/logger"
)

// LogRunRequest represents a request to log a completed run
type LogRunRequest struct {
	UserID          string  `json:"user_id" validate:"required,uuid"`
	DistanceKm      float64 `json:"distance_km" validate:"required,gt=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gt=0"`
	Intensity       string  `json:"intensity" validate:"required,intensity"`
}

// HandleLogRun handles POST requests to log a run
// @Summary Log a run
// @Description Record a running activity, earning coins and growing the garden
// @Tags runs
// @Accept json
// @Produce json
// @Param request body LogRunRequest true "Run details"
// @Success 201 {object} activity.LogRunResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /runs [post]
func HandleLogRun(svc activity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req LogRunRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Log run"); err != nil {
			return
		}

		result, err := svc.LogRun(r.Context(), req.UserID, req.DistanceKm, req.DurationMinutes, req.Intensity)
		if err != nil {
			respondServiceError(w, r, "Log run", err)
			return
		}

		log.Info("Run logged", "user_id", req.UserID, "run_id", result.Run.ID, "coins_earned", result.CoinsEarned)
		respondJSON(w, http.StatusCreated, result)
	}
}

// HandleListRuns handles GET requests for paginated run history
// @Summary List runs
// @Description Get a user's run history, newest first
// @Tags runs
// @Produce json
// @Param user_id query string true "User ID"
// @Param page query int false "Page number (default 1)"
// @Param per_page query int false "Page size (default 20, max 100)"
// @Success 200 {object} activity.RunPage
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /runs [get]
func HandleListRuns(svc activity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDParam(r, w)
		if !ok {
			return
		}

		page, err := strconv.Atoi(GetOptionalQueryParam(r, "page", "1"))
		if err != nil || page < 1 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidPage)
			return
		}
		perPage, err := strconv.Atoi(GetOptionalQueryParam(r, "per_page", "0"))
		if err != nil || perPage < 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidPerPage)
			return
		}

		result, err := svc.ListRuns(r.Context(), userID, page, perPage)
		if err != nil {
			respondServiceError(w, r, "List runs", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
