// internal/handlers/evaluation_handler.go
package handlers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"localboost/internal/engine"
	"localboost/internal/interfaces"
	"localboost/internal/models"
)

// EvaluationHandler runs the campaign engine over stored or request-supplied
// data. The engine itself is pure; this handler owns the clock and the ID
// source.
type EvaluationHandler struct {
	campaigns interfaces.CampaignRepository
	customers interfaces.CustomerRepository
	events    interfaces.EventRepository
	queue     interfaces.QueueRepository
	ids       engine.IDSource
	validator *validator.Validate
}

func NewEvaluationHandler(
	campaigns interfaces.CampaignRepository,
	customers interfaces.CustomerRepository,
	events interfaces.EventRepository,
	queue interfaces.QueueRepository,
) *EvaluationHandler {
	return &EvaluationHandler{
		campaigns: campaigns,
		customers: customers,
		events:    events,
		queue:     queue,
		ids:       engine.NewUUIDSource(),
		validator: validator.New(),
	}
}

// EvaluateCampaign handles POST /api/v1/campaigns/{id}/evaluate
// Loads the stored campaign, its customers and its event log, runs the
// engine, and (with ?persist=true) replaces the stored send queue with the
// computed one.
// @Tags evaluations
// @Summary Evaluate stored campaign
// @Produce json
// @Param id path string true "Campaign ID"
// @Param persist query bool false "Persist the computed send queue"
// @Success 200 {object} models.EvaluationResult
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id}/evaluate [post]
func (h *EvaluationHandler) EvaluateCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")
	if campaignID == "" {
		http.Error(w, "Campaign ID is required", http.StatusBadRequest)
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

	customers, err := h.customers.ListByCampaign(r.Context(), campaignID, 0, 0)
	if err != nil {
		http.Error(w, "Failed to load customers: "+err.Error(), http.StatusInternalServerError)
		return
	}

	events, err := h.events.ListByCampaign(r.Context(), campaignID)
	if err != nil {
		http.Error(w, "Failed to load events: "+err.Error(), http.StatusInternalServerError)
		return
	}

	result := engine.Evaluate(models.EvaluationInput{
		Campaign:  *campaign,
		Customers: customers,
		Events:    events,
	}, time.Now().UTC(), h.ids)

	if r.URL.Query().Get("persist") == "true" {
		for i := range result.SendQueue {
			result.SendQueue[i].CampaignID = campaignID
		}
		if err := h.queue.ReplaceForCampaign(r.Context(), campaignID, result.SendQueue); err != nil {
			log.Println("Error persisting send queue for campaign", campaignID, ":", err)
			writeJSONErrorResponse(w, http.StatusInternalServerError, "persist_queue_failed", "Failed to persist send queue")
			return
		}
	}

	writeJSON(w, http.StatusOK, result)
}

// EvaluateStateless handles POST /api/v1/evaluations
// Runs the engine over the request body without touching storage. Useful
// for previewing rule changes before saving them.
// @Tags evaluations
// @Summary Evaluate request-supplied campaign data
// @Accept json
// @Produce json
// @Param body body models.EvaluationInput true "Campaign, customers and events"
// @Success 200 {object} models.EvaluationResult
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/evaluations [post]
func (h *EvaluationHandler) EvaluateStateless(w http.ResponseWriter, r *http.Request) {
	var input models.EvaluationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	result := engine.Evaluate(input, time.Now().UTC(), h.ids)
	writeJSON(w, http.StatusOK, result)
}

// GetFunnel handles GET /api/v1/campaigns/{id}/funnel
// Counts come from the stored queue item statuses, so this reflects what
// actually happened to persisted items rather than the engine's
// event-derived projection.
// @Tags evaluations
// @Summary Funnel counts from stored queue
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} map[string]int
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id}/funnel [get]
func (h *EvaluationHandler) GetFunnel(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")
	if campaignID == "" {
		http.Error(w, "Campaign ID is required", http.StatusBadRequest)
		return
	}

	counts, err := h.queue.CountByStatus(r.Context(), campaignID)
	if err != nil {
		http.Error(w, "Failed to aggregate funnel: "+err.Error(), http.StatusInternalServerError)
		return
	}

	out := map[string]int{
		"pending": counts[models.QueueStatusPending],
		"skipped": counts[models.QueueStatusSkipped],
		"sent":    counts[models.QueueStatusSent],
		"failed":  counts[models.QueueStatusFailed],
	}

	writeJSON(w, http.StatusOK, out)
}

// ListQueue handles GET /api/v1/campaigns/{id}/queue
// @Tags evaluations
// @Summary List persisted send queue
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {array} models.SendQueueItem
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id}/queue [get]
func (h *EvaluationHandler) ListQueue(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")
	if campaignID == "" {
		http.Error(w, "Campaign ID is required", http.StatusBadRequest)
		return
	}

	items, err := h.queue.ListByCampaign(r.Context(), campaignID)
	if err != nil {
		http.Error(w, "Failed to list queue: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if items == nil {
		items = []models.SendQueueItem{}
	}

	writeJSON(w, http.StatusOK, items)
}

// UpdateQueueItem handles PATCH /api/v1/queue/{id}
// Lets whatever process delivers messages record the outcome per item.
// @Tags evaluations
// @Summary Update queue item status
// @Accept json
// @Produce json
// @Param id path string true "Queue item ID"
// @Param body body models.UpdateQueueItemRequest true "New status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/queue/{id} [patch]
func (h *EvaluationHandler) UpdateQueueItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "Queue item ID is required", http.StatusBadRequest)
		return
	}

	var req models.UpdateQueueItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if err := h.queue.UpdateStatus(r.Context(), id, req.Status); err != nil {
		if err == sql.ErrNoRows {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "queue item not found"})
			return
		}
		http.Error(w, "Failed to update queue item: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "queue item updated",
		"id":      id,
		"status":  string(req.Status),
	})
}
