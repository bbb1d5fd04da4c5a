package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"localboost/internal/interfaces"
	"localboost/internal/models"
)

type mockCustomerRepo struct {
	customers []models.Customer
}

var _ interfaces.CustomerRepository = (*mockCustomerRepo)(nil)

func (m *mockCustomerRepo) Create(ctx context.Context, customer *models.Customer) error { return nil }
func (m *mockCustomerRepo) BulkCreate(ctx context.Context, customers []*models.Customer) error {
	return nil
}
func (m *mockCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	return nil, nil
}
func (m *mockCustomerRepo) ListByCampaign(ctx context.Context, campaignID string, limit, offset int) ([]models.Customer, error) {
	return m.customers, nil
}
func (m *mockCustomerRepo) Update(ctx context.Context, id string, customer *models.Customer) error {
	return nil
}
func (m *mockCustomerRepo) Delete(ctx context.Context, id string) error { return nil }

type mockEventRepo struct {
	events []models.Event
}

var _ interfaces.EventRepository = (*mockEventRepo)(nil)

func (m *mockEventRepo) Append(ctx context.Context, event *models.Event) error { return nil }
func (m *mockEventRepo) ListByCampaign(ctx context.Context, campaignID string) ([]models.Event, error) {
	return m.events, nil
}
func (m *mockEventRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Event, error) {
	return m.events, nil
}

type mockQueueRepo struct {
	replaced []models.SendQueueItem
	counts   map[models.QueueItemStatus]int
}

var _ interfaces.QueueRepository = (*mockQueueRepo)(nil)

func (m *mockQueueRepo) ReplaceForCampaign(ctx context.Context, campaignID string, items []models.SendQueueItem) error {
	m.replaced = items
	return nil
}
func (m *mockQueueRepo) ListByCampaign(ctx context.Context, campaignID string) ([]models.SendQueueItem, error) {
	return m.replaced, nil
}
func (m *mockQueueRepo) UpdateStatus(ctx context.Context, id string, status models.QueueItemStatus) error {
	return nil
}
func (m *mockQueueRepo) CountByStatus(ctx context.Context, campaignID string) (map[models.QueueItemStatus]int, error) {
	return m.counts, nil
}

func evaluationFixture() (*mockCampaignRepo, *mockCustomerRepo, *mockEventRepo, *mockQueueRepo) {
	campaigns := &mockCampaignRepo{
		stored: &models.Campaign{
			ID:           "11111111-1111-1111-1111-111111111111",
			BusinessName: "Mario's Pizzeria",
			BusinessType: "restaurant",
			Platform:     "google",
			ReviewLink:   "https://g.page/marios/review",
			Language:     "en",
			Tone:         "friendly",
			Rules: models.CampaignRules{
				TriggerType:      models.TriggerManual,
				FrequencyCapDays: 30,
				QuietHours:       models.QuietHours{Start: "22:00", End: "01:00"},
			},
		},
	}
	customers := &mockCustomerRepo{
		customers: []models.Customer{
			{ID: "cust-1", CampaignID: campaigns.stored.ID, Name: "Ana", Phone: "+15550001"},
			{ID: "cust-2", CampaignID: campaigns.stored.ID, Name: "Ben", Email: "ben@example.com"},
		},
	}
	events := &mockEventRepo{}
	queue := &mockQueueRepo{}
	return campaigns, customers, events, queue
}

func TestEvaluateCampaignReturnsFullResult(t *testing.T) {
	campaigns, customers, events, queue := evaluationFixture()
	h := NewEvaluationHandler(campaigns, customers, events, queue)
	r := chi.NewRouter()
	r.Post("/campaigns/{id}/evaluate", h.EvaluateCampaign)

	req := httptest.NewRequest(http.MethodPost, "/campaigns/11111111-1111-1111-1111-111111111111/evaluate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var result models.EvaluationResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(result.SendQueue) != 2 {
		t.Fatalf("expected 2 queue items got %d", len(result.SendQueue))
	}
	if result.Metrics.Loaded != 2 || result.Metrics.Ready != 2 {
		t.Fatalf("unexpected metrics %+v", result.Metrics)
	}
	if result.CampaignHealth.Score == 0 {
		t.Fatalf("expected health to be scored, got %+v", result.CampaignHealth)
	}
	// Nothing persisted without the flag.
	if queue.replaced != nil {
		t.Fatalf("expected no persistence without persist=true")
	}
}

func TestEvaluateCampaignPersistsQueue(t *testing.T) {
	campaigns, customers, events, queue := evaluationFixture()
	h := NewEvaluationHandler(campaigns, customers, events, queue)
	r := chi.NewRouter()
	r.Post("/campaigns/{id}/evaluate", h.EvaluateCampaign)

	req := httptest.NewRequest(http.MethodPost, "/campaigns/11111111-1111-1111-1111-111111111111/evaluate?persist=true", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	if len(queue.replaced) != 2 {
		t.Fatalf("expected 2 persisted items got %d", len(queue.replaced))
	}
	for _, item := range queue.replaced {
		if item.CampaignID != "11111111-1111-1111-1111-111111111111" {
			t.Fatalf("expected campaign id stamped on item, got %+v", item)
		}
	}
}

func TestEvaluateCampaignNotFound(t *testing.T) {
	h := NewEvaluationHandler(&mockCampaignRepo{}, &mockCustomerRepo{}, &mockEventRepo{}, &mockQueueRepo{})
	r := chi.NewRouter()
	r.Post("/campaigns/{id}/evaluate", h.EvaluateCampaign)

	req := httptest.NewRequest(http.MethodPost, "/campaigns/missing/evaluate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestEvaluateStatelessRunsWithoutStorage(t *testing.T) {
	h := NewEvaluationHandler(&mockCampaignRepo{}, &mockCustomerRepo{}, &mockEventRepo{}, &mockQueueRepo{})
	r := chi.NewRouter()
	r.Post("/evaluations", h.EvaluateStateless)

	input := models.EvaluationInput{
		Campaign: models.Campaign{
			BusinessName: "Zen Spa",
			ReviewLink:   "https://example.com/review",
			Rules: models.CampaignRules{
				TriggerType:      models.TriggerManual,
				FrequencyCapDays: 30,
				QuietHours:       models.QuietHours{Start: "22:00", End: "01:00"},
			},
		},
		Customers: []models.Customer{
			{ID: "c1", Name: "Ana", Phone: "+15550001"},
		},
	}
	body, _ := json.Marshal(input)

	req := httptest.NewRequest(http.MethodPost, "/evaluations", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var result models.EvaluationResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(result.SendQueue) != 1 {
		t.Fatalf("expected 1 queue item got %d", len(result.SendQueue))
	}
	if len(result.ValidationErrors) != 0 {
		t.Fatalf("expected no validation errors, got %v", result.ValidationErrors)
	}
}

func TestGetFunnelAggregatesStoredStatuses(t *testing.T) {
	queue := &mockQueueRepo{counts: map[models.QueueItemStatus]int{
		models.QueueStatusPending: 3,
		models.QueueStatusSent:    2,
		models.QueueStatusFailed:  1,
	}}
	h := NewEvaluationHandler(&mockCampaignRepo{}, &mockCustomerRepo{}, &mockEventRepo{}, queue)
	r := chi.NewRouter()
	r.Get("/campaigns/{id}/funnel", h.GetFunnel)

	req := httptest.NewRequest(http.MethodGet, "/campaigns/c1/funnel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]int
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["pending"] != 3 || resp["sent"] != 2 || resp["failed"] != 1 || resp["skipped"] != 0 {
		t.Fatalf("unexpected funnel %v", resp)
	}
}

func TestUpdateQueueItemRejectsUnknownStatus(t *testing.T) {
	h := NewEvaluationHandler(&mockCampaignRepo{}, &mockCustomerRepo{}, &mockEventRepo{}, &mockQueueRepo{})
	r := chi.NewRouter()
	r.Patch("/queue/{id}", h.UpdateQueueItem)

	body := []byte(`{"status": "delivered"}`)
	req := httptest.NewRequest(http.MethodPatch, "/queue/q1", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
}

// Sanity check that a scheduled item lands in the future-or-now side of the
// clock rather than inside the configured quiet window.
func TestEvaluatePersistedItemsHaveSchedules(t *testing.T) {
	campaigns, customers, events, queue := evaluationFixture()
	h := NewEvaluationHandler(campaigns, customers, events, queue)
	r := chi.NewRouter()
	r.Post("/campaigns/{id}/evaluate", h.EvaluateCampaign)

	before := time.Now().UTC().Add(-time.Minute)
	req := httptest.NewRequest(http.MethodPost, "/campaigns/11111111-1111-1111-1111-111111111111/evaluate?persist=true", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	for _, item := range queue.replaced {
		if item.ScheduledAt.Before(before) {
			t.Fatalf("expected schedule at or after request time, got %v", item.ScheduledAt)
		}
	}
}
