// internal/handlers/tools_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"localboost/internal/models"
	"localboost/internal/tools"
)

// ToolsHandler serves the dashboard's generator utilities. All three are
// pure lookups, so there is no repository behind this handler.
type ToolsHandler struct {
	validator *validator.Validate
}

func NewToolsHandler() *ToolsHandler {
	return &ToolsHandler{validator: validator.New()}
}

// GenerateBrandKit handles POST /api/v1/tools/brand-kit
// @Tags tools
// @Summary Generate starter brand kit
// @Accept json
// @Produce json
// @Param body body models.BrandKitRequest true "Brand kit request"
// @Success 200 {object} models.BrandKit
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/tools/brand-kit [post]
func (h *ToolsHandler) GenerateBrandKit(w http.ResponseWriter, r *http.Request) {
	var req models.BrandKitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, tools.BuildBrandKit(req))
}

// ExpandKeywords handles POST /api/v1/tools/keywords
// @Tags tools
// @Summary Expand seed keyword
// @Accept json
// @Produce json
// @Param body body models.KeywordRequest true "Keyword request"
// @Success 200 {array} models.KeywordSuggestion
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/tools/keywords [post]
func (h *ToolsHandler) ExpandKeywords(w http.ResponseWriter, r *http.Request) {
	var req models.KeywordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	suggestions := tools.ExpandKeywords(req)
	if suggestions == nil {
		suggestions = []models.KeywordSuggestion{}
	}
	writeJSON(w, http.StatusOK, suggestions)
}

// DraftSocialPost handles POST /api/v1/tools/social-post
// @Tags tools
// @Summary Draft social post
// @Accept json
// @Produce json
// @Param body body models.SocialPostRequest true "Social post request"
// @Success 200 {object} models.SocialPost
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/tools/social-post [post]
func (h *ToolsHandler) DraftSocialPost(w http.ResponseWriter, r *http.Request) {
	var req models.SocialPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, tools.DraftSocialPost(req))
}
