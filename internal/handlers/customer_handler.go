// internal/handlers/customer_handler.go
package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"

	"localboost/internal/interfaces"
	"localboost/internal/models"
)

const bulkImportMaxCustomers = 1000

type CustomerHandler struct {
	customers interfaces.CustomerRepository
	campaigns interfaces.CampaignRepository
	validator *validator.Validate
}

func NewCustomerHandler(customers interfaces.CustomerRepository, campaigns interfaces.CampaignRepository) *CustomerHandler {
	return &CustomerHandler{
		customers: customers,
		campaigns: campaigns,
		validator: validator.New(),
	}
}

// CreateCustomer handles POST /api/v1/campaigns/{id}/customers
// @Tags customers
// @Summary Add customer to campaign
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param body body models.CreateCustomerRequest true "Create customer request"
// @Success 201 {object} models.Customer
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id}/customers [post]
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")
	if campaignID == "" {
		http.Error(w, "Campaign ID is required", http.StatusBadRequest)
		return
	}

	var req models.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	customer := &models.Customer{
		CampaignID:    campaignID,
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Tags:          req.Tags,
		LastVisitDate: req.LastVisitDate,
		ServiceType:   req.ServiceType,
		JobID:         req.JobID,
		CreatedAt:     time.Now().UTC(),
	}

	if err := h.customers.Create(r.Context(), customer); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_campaign_id", "Campaign not found")
			return
		}
		log.Println("Error creating customer:", err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "create_customer_failed", "Failed to create customer")
		return
	}

	writeJSON(w, http.StatusCreated, customer)
}

// ImportCustomers handles POST /api/v1/campaigns/{id}/customers/import
// The body is a JSON array of customers; the whole batch is inserted in a
// single transaction, so a bad row rejects the batch.
// @Tags customers
// @Summary Bulk import customers
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param body body []models.CreateCustomerRequest true "Customers to import"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id}/customers/import [post]
func (h *CustomerHandler) ImportCustomers(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")
	if campaignID == "" {
		http.Error(w, "Campaign ID is required", http.StatusBadRequest)
		return
	}

	if _, err := h.campaigns.GetByID(r.Context(), campaignID); err != nil {
		if err == sql.ErrNoRows {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "campaign not found"})
			return
		}
		http.Error(w, "Failed to fetch campaign: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var reqs []models.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if len(reqs) == 0 {
		writeJSONErrorResponse(w, http.StatusBadRequest, "empty_import", "No customers to import")
		return
	}
	if len(reqs) > bulkImportMaxCustomers {
		writeJSONErrorResponse(w, http.StatusBadRequest, "import_too_large",
			fmt.Sprintf("Import limited to %d customers per request", bulkImportMaxCustomers))
		return
	}

	now := time.Now().UTC()
	customers := make([]*models.Customer, 0, len(reqs))
	for i, req := range reqs {
		if err := h.validator.Struct(req); err != nil {
			writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error",
				fmt.Sprintf("customer %d: %s", i, err.Error()))
			return
		}
		customers = append(customers, &models.Customer{
			CampaignID:    campaignID,
			Name:          req.Name,
			Phone:         req.Phone,
			Email:         req.Email,
			Tags:          req.Tags,
			LastVisitDate: req.LastVisitDate,
			ServiceType:   req.ServiceType,
			JobID:         req.JobID,
			CreatedAt:     now,
		})
	}

	if err := h.customers.BulkCreate(r.Context(), customers); err != nil {
		log.Println("Error importing customers:", err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "import_customers_failed", "Failed to import customers")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"imported":  len(customers),
		"customers": customers,
	})
}

// ListCustomers handles GET /api/v1/campaigns/{id}/customers
// @Tags customers
// @Summary List customers in campaign
// @Produce json
// @Param id path string true "Campaign ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.Customer
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id}/customers [get]
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")
	if campaignID == "" {
		http.Error(w, "Campaign ID is required", http.StatusBadRequest)
		return
	}

	limit, offset := parsePagination(r, 200)
	customers, err := h.customers.ListByCampaign(r.Context(), campaignID, limit, offset)
	if err != nil {
		http.Error(w, "Failed to list customers: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if customers == nil {
		customers = []models.Customer{}
	}

	writeJSON(w, http.StatusOK, customers)
}

// GetCustomer handles GET /api/v1/customers/{id}
// @Tags customers
// @Summary Get customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} models.Customer
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/customers/{id} [get]
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "Customer ID is required", http.StatusBadRequest)
		return
	}

	customer, err := h.customers.GetByID(r.Context(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "customer not found"})
			return
		}
		http.Error(w, "Failed to fetch customer: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// UpdateCustomer handles PUT /api/v1/customers/{id}
// @Tags customers
// @Summary Update customer
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param body body models.UpdateCustomerRequest true "Update customer request"
// @Success 200 {object} models.Customer
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "Customer ID is required", http.StatusBadRequest)
		return
	}

	var req models.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	existing, err := h.customers.GetByID(r.Context(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "customer not found"})
			return
		}
		http.Error(w, "Failed to get customer: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Phone != nil {
		existing.Phone = *req.Phone
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.Tags != nil {
		existing.Tags = *req.Tags
	}
	if req.LastVisitDate != nil {
		existing.LastVisitDate = req.LastVisitDate
	}
	if req.ServiceType != nil {
		existing.ServiceType = *req.ServiceType
	}
	if req.JobID != nil {
		existing.JobID = *req.JobID
	}
	if req.OptedOut != nil {
		existing.OptedOut = *req.OptedOut
	}

	if err := h.customers.Update(r.Context(), id, existing); err != nil {
		http.Error(w, "Failed to update customer: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, existing)
}

// DeleteCustomer handles DELETE /api/v1/customers/{id}
// @Tags customers
// @Summary Delete customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "Customer ID is required", http.StatusBadRequest)
		return
	}

	if err := h.customers.Delete(r.Context(), id); err != nil {
		if err == sql.ErrNoRows {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "customer not found"})
			return
		}
		http.Error(w, "Failed to delete customer: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "customer deleted successfully",
		"id":      id,
	})
}
