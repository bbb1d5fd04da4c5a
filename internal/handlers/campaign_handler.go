// internal/handlers/campaign_handler.go
package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"

	"localboost/internal/interfaces"
	"localboost/internal/models"
)

type CampaignHandler struct {
	repo      interfaces.CampaignRepository
	validator *validator.Validate
}

func NewCampaignHandler(repo interfaces.CampaignRepository) *CampaignHandler {
	return &CampaignHandler{
		repo:      repo,
		validator: validator.New(),
	}
}

// CreateCampaign handles POST /api/v1/campaigns
// @Tags campaigns
// @Summary Create campaign
// @Accept json
// @Produce json
// @Param body body models.CreateCampaignRequest true "Create campaign request"
// @Success 201 {object} models.Campaign
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/campaigns [post]
func (h *CampaignHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	campaign := &models.Campaign{
		BusinessName: req.BusinessName,
		BusinessType: req.BusinessType,
		Platform:     req.Platform,
		ReviewLink:   req.ReviewLink,
		Language:     req.Language,
		Tone:         req.Tone,
		BrandVoice:   req.BrandVoice,
		Rules:        req.Rules,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := h.repo.Create(r.Context(), campaign); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			writeJSONErrorResponse(w, http.StatusConflict, "duplicate_campaign", "A campaign with these values already exists")
			return
		}
		log.Println("Error creating campaign:", err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "create_campaign_failed", "Failed to create campaign")
		return
	}

	writeJSON(w, http.StatusCreated, campaign)
}

// GetCampaign handles GET /api/v1/campaigns/{id}
// @Tags campaigns
// @Summary Get campaign
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.Campaign
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id} [get]
func (h *CampaignHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "Campaign ID is required", http.StatusBadRequest)
		return
	}

	campaign, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "campaign not found"})
			return
		}
		http.Error(w, "Failed to fetch campaign: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, campaign)
}

// ListCampaigns handles GET /api/v1/campaigns
// @Tags campaigns
// @Summary List campaigns
// @Produce json
// @Param platform query string false "Filter by review platform"
// @Param business_type query string false "Filter by business type"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.Campaign
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/campaigns [get]
func (h *CampaignHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r, 100)
	filter := interfaces.CampaignFilter{
		Platform:     r.URL.Query().Get("platform"),
		BusinessType: r.URL.Query().Get("business_type"),
		Limit:        limit,
		Offset:       offset,
	}

	campaigns, err := h.repo.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "Failed to list campaigns: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if campaigns == nil {
		campaigns = []*models.Campaign{} // Return empty array instead of null
	}

	writeJSON(w, http.StatusOK, campaigns)
}

// UpdateCampaign handles PUT /api/v1/campaigns/{id}
// @Tags campaigns
// @Summary Update campaign
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param body body models.UpdateCampaignRequest true "Update campaign request"
// @Success 200 {object} models.Campaign
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id} [put]
func (h *CampaignHandler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "Campaign ID is required", http.StatusBadRequest)
		return
	}

	var req models.UpdateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	existing, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "campaign not found"})
			return
		}
		http.Error(w, "Failed to get campaign: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if req.BusinessName != nil {
		existing.BusinessName = *req.BusinessName
	}
	if req.BusinessType != nil {
		existing.BusinessType = *req.BusinessType
	}
	if req.Platform != nil {
		existing.Platform = *req.Platform
	}
	if req.ReviewLink != nil {
		existing.ReviewLink = *req.ReviewLink
	}
	if req.Language != nil {
		existing.Language = *req.Language
	}
	if req.Tone != nil {
		existing.Tone = *req.Tone
	}
	if req.BrandVoice != nil {
		existing.BrandVoice = *req.BrandVoice
	}
	if req.Rules != nil {
		existing.Rules = *req.Rules
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := h.repo.Update(r.Context(), id, existing); err != nil {
		http.Error(w, "Failed to update campaign: "+err.Error(), http.StatusInternalServerError)
		return
	}

	updated, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "campaign not found"})
			return
		}
		http.Error(w, "Failed to get updated campaign: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteCampaign handles DELETE /api/v1/campaigns/{id}
// @Tags campaigns
// @Summary Delete campaign
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id} [delete]
func (h *CampaignHandler) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "Campaign ID is required", http.StatusBadRequest)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		log.Println("Error deleting campaign with ID:", id, "Error:", err)
		if err == sql.ErrNoRows {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "campaign not found"})
			return
		}
		http.Error(w, "Failed to delete campaign: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "campaign deleted successfully",
		"id":      id,
	})
}
