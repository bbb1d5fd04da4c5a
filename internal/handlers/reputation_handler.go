// internal/handlers/reputation_handler.go
package handlers

import (
	"net/http"

	"localboost/internal/services"
)

type ReputationHandler struct {
	client *services.ReputationConsoleClient
}

func NewReputationHandler(client *services.ReputationConsoleClient) *ReputationHandler {
	return &ReputationHandler{client: client}
}

// GetReputation handles GET /api/v1/reputation
// Proxies a rating snapshot from the configured review-platform console.
// @Tags reputation
// @Summary Fetch reputation snapshot
// @Produce json
// @Param platform query string true "Review platform"
// @Param profile_id query string true "Business profile ID on the platform"
// @Success 200 {object} services.ReputationSnapshot
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/reputation [get]
func (h *ReputationHandler) GetReputation(w http.ResponseWriter, r *http.Request) {
	platform := r.URL.Query().Get("platform")
	profileID := r.URL.Query().Get("profile_id")
	if platform == "" || profileID == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "platform and profile_id are required")
		return
	}

	snapshot, err := h.client.GetSnapshot(r.Context(), platform, profileID)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadGateway, "console_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}
