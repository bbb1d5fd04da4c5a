// internal/handlers/message_handler.go
package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"localboost/internal/engine"
	"localboost/internal/interfaces"
	"localboost/internal/services"
)

type testMessageRequest struct {
	To      string `json:"to" validate:"required,email"`
	Variant string `json:"variant" validate:"required,oneof=smsShort smsStandard email followUpSms"`
}

// MessageHandler emails campaign template previews to the operator. It is
// the only place the service sends anything; customer-facing delivery is
// someone else's job.
type MessageHandler struct {
	campaigns interfaces.CampaignRepository
	sender    services.MessageSender
	validator *validator.Validate
}

func NewMessageHandler(campaigns interfaces.CampaignRepository, sender services.MessageSender) *MessageHandler {
	return &MessageHandler{
		campaigns: campaigns,
		sender:    sender,
		validator: validator.New(),
	}
}

// SendTestMessage handles POST /api/v1/campaigns/{id}/test-message
// @Tags messages
// @Summary Email a template preview
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param body body testMessageRequest true "Recipient and template variant"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id}/test-message [post]
func (h *MessageHandler) SendTestMessage(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")
	if campaignID == "" {
		http.Error(w, "Campaign ID is required", http.StatusBadRequest)
		return
	}

	var req testMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	campaign, err := h.campaigns.GetByID(r.Context(), campaignID)
	if err != nil {
		if err == sql.ErrNoRows {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "campaign not found"})
			return
		}
		http.Error(w, "Failed to fetch campaign: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templates := engine.BuildTemplates(*campaign)
	preview, err := services.BuildPreview(campaign.BusinessName, templates, req.Variant)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if err := h.sender.SendPreview(req.To, preview); err != nil {
		writeJSONErrorResponse(w, http.StatusBadGateway, "send_failed", "Failed to send preview: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "preview sent",
		"to":      req.To,
		"variant": req.Variant,
	})
}
