// internal/handlers/event_handler.go
package handlers

import (
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

type EventHandler struct {
	events    interfaces.EventRepository
	validator *validator.Validate
}

func NewEventHandler(events interfaces.EventRepository) *EventHandler {
	return &EventHandler{
		events:    events,
		validator: validator.New(),
	}
}

// AppendEvent handles POST /api/v1/events
// Events are append-only; a missing timestamp defaults to the server clock.
// @Tags events
// @Summary Append activity event
// @Accept json
// @Produce json
// @Param body body models.AppendEventRequest true "Append event request"
// @Success 201 {object} models.Event
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/events [post]
func (h *EventHandler) AppendEvent(w http.ResponseWriter, r *http.Request) {
	var req models.AppendEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	ts := time.Now().UTC()
	if req.Timestamp != nil {
		ts = req.Timestamp.UTC()
	}

	event := &models.Event{
		CampaignID: req.CampaignID,
		CustomerID: req.CustomerID,
		Type:       req.Type,
		Timestamp:  ts,
		Metadata:   req.Metadata,
	}

	if err := h.events.Append(r.Context(), event); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_reference", "Campaign or customer not found")
			return
		}
		log.Println("Error appending event:", err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "append_event_failed", "Failed to append event")
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

// ListCampaignEvents handles GET /api/v1/campaigns/{id}/events
// @Tags events
// @Summary List events for campaign
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {array} models.Event
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id}/events [get]
func (h *EventHandler) ListCampaignEvents(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")
	if campaignID == "" {
		http.Error(w, "Campaign ID is required", http.StatusBadRequest)
		return
	}

	events, err := h.events.ListByCampaign(r.Context(), campaignID)
	if err != nil {
		http.Error(w, "Failed to list events: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if events == nil {
		events = []models.Event{}
	}

	writeJSON(w, http.StatusOK, events)
}

// ListCustomerEvents handles GET /api/v1/customers/{id}/events
// @Tags events
// @Summary List events for customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {array} models.Event
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/customers/{id}/events [get]
func (h *EventHandler) ListCustomerEvents(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	if customerID == "" {
		http.Error(w, "Customer ID is required", http.StatusBadRequest)
		return
	}

	events, err := h.events.ListByCustomer(r.Context(), customerID)
	if err != nil {
		http.Error(w, "Failed to list events: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if events == nil {
		events = []models.Event{}
	}

	writeJSON(w, http.StatusOK, events)
}
