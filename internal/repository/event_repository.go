package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"localboost/internal/interfaces"
	"localboost/internal/models"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) interfaces.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Append(ctx context.Context, event *models.Event) error {
	metadata := event.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to encode event metadata: %w", err)
	}

	query := `
		INSERT INTO events (campaign_id, customer_id, type, occurred_at, metadata)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	return r.db.QueryRowContext(
		ctx,
		query,
		event.CampaignID,
		event.CustomerID,
		event.Type,
		event.Timestamp,
		raw,
	).Scan(&event.ID)
}

func (r *eventRepository) ListByCampaign(ctx context.Context, campaignID string) ([]models.Event, error) {
	query := `
		SELECT id, campaign_id, customer_id, type, occurred_at, metadata
		FROM events
		WHERE campaign_id = $1
		ORDER BY occurred_at ASC
	`
	return r.listEvents(ctx, query, campaignID)
}

func (r *eventRepository) ListByCustomer(ctx context.Context, customerID string) ([]models.Event, error) {
	query := `
		SELECT id, campaign_id, customer_id, type, occurred_at, metadata
		FROM events
		WHERE customer_id = $1
		ORDER BY occurred_at ASC
	`
	return r.listEvents(ctx, query, customerID)
}

func (r *eventRepository) listEvents(ctx context.Context, query string, arg interface{}) ([]models.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		var raw []byte
		err := rows.Scan(&e.ID, &e.CampaignID, &e.CustomerID, &e.Type, &e.Timestamp, &raw)
		if err != nil {
			return nil, err
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &e.Metadata); err != nil {
				return nil, fmt.Errorf("failed to decode event metadata: %w", err)
			}
		}
		events = append(events, e)
	}

	return events, rows.Err()
}
