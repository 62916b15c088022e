package handler

import (
	"net/http"

	"github.com/ovelgard/StrideGarden_Go/internal/wallet"
)

// HandleGetWallet handles GET requests for a user's wallet
// @Summary Get wallet
// @Description Get a user's coin balance and lifetime totals
// @Tags wallet
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.Wallet
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /wallet [get]
func HandleGetWallet(svc wallet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDParam(r, w)
		if !ok {
			return
		}

		result, err := svc.GetWallet(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get wallet", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
