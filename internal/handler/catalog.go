package handler

import (
	"net/http"

	"github.com/ovelgard/StrideGarden_Go/internal/catalog"
)

// HandleListSeeds handles GET requests for the seed catalog
// @Summary List seeds
// @Description Get all purchasable seed definitions
// @Tags seeds
// @Produce json
// @Success 200 {array} domain.Seed
// @Failure 500 {object} ErrorResponse
// @Router /seeds [get]
func HandleListSeeds(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seeds, err := svc.ListSeeds(r.Context())
		if err != nil {
			respondServiceError(w, r, "List seeds", err)
			return
		}

		respondJSON(w, http.StatusOK, seeds)
	}
}
