// internal/models/event.go
package models

import "time"

type EventType string

const (
	EventQueued   EventType = "queued"
	EventSent     EventType = "sent"
	EventClicked  EventType = "clicked"
	EventReviewed EventType = "reviewed"
	EventOptedOut EventType = "optedOut"
)

// Event is one entry in the append-only campaign activity log.
// The engine only ever reads these.
type Event struct {
	ID         string            `json:"id"`
	CampaignID string            `json:"campaign_id"`
	CustomerID string            `json:"customer_id" validate:"required"`
	Type       EventType         `json:"type" validate:"required,oneof=queued sent clicked reviewed optedOut"`
	Timestamp  time.Time         `json:"timestamp"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

type AppendEventRequest struct {
	CampaignID string            `json:"campaign_id" validate:"required"`
	CustomerID string            `json:"customer_id" validate:"required"`
	Type       EventType         `json:"type" validate:"required,oneof=queued sent clicked reviewed optedOut"`
	Timestamp  *time.Time        `json:"timestamp,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}
