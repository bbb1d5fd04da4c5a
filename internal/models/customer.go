// internal/models/customer.go
package models

import "time"

// CustomerStatus is the lifecycle stage derived from the event log.
type CustomerStatus string

const (
	StatusQueued   CustomerStatus = "queued"
	StatusSent     CustomerStatus = "sent"
	StatusClicked  CustomerStatus = "clicked"
	StatusReviewed CustomerStatus = "reviewed"
	StatusOptedOut CustomerStatus = "optedOut"
)

type Customer struct {
	ID            string     `json:"id"`
	CampaignID    string     `json:"campaign_id"`
	Name          string     `json:"name" validate:"required"`
	Phone         string     `json:"phone,omitempty"`
	Email         string     `json:"email,omitempty" validate:"omitempty,email"`
	Tags          []string   `json:"tags,omitempty"`
	LastVisitDate *time.Time `json:"last_visit_date,omitempty"`
	ServiceType   string     `json:"service_type,omitempty"`
	JobID         string     `json:"job_id,omitempty"`
	OptedOut      bool       `json:"opted_out"`
	CreatedAt     time.Time  `json:"created_at"`
}

// HasContact reports whether the customer can be reached on any channel.
func (c *Customer) HasContact() bool {
	return c.Phone != "" || c.Email != ""
}

// CustomerWithStatus is a Customer plus state folded from its events.
// Derived on every evaluation, never persisted.
type CustomerWithStatus struct {
	Customer
	Status         CustomerStatus `json:"status"`
	LastSentAt     *time.Time     `json:"last_sent_at,omitempty"`
	LastClickedAt  *time.Time     `json:"last_clicked_at,omitempty"`
	LastReviewedAt *time.Time     `json:"last_reviewed_at,omitempty"`
	NeedsFollowUp  bool           `json:"needs_follow_up"`
}

type CreateCustomerRequest struct {
	Name          string     `json:"name" validate:"required"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email" validate:"omitempty,email"`
	Tags          []string   `json:"tags"`
	LastVisitDate *time.Time `json:"last_visit_date"`
	ServiceType   string     `json:"service_type"`
	JobID         string     `json:"job_id"`
}

type UpdateCustomerRequest struct {
	Name          *string    `json:"name,omitempty" validate:"omitempty,min=1"`
	Phone         *string    `json:"phone,omitempty"`
	Email         *string    `json:"email,omitempty" validate:"omitempty,email"`
	Tags          *[]string  `json:"tags,omitempty"`
	LastVisitDate *time.Time `json:"last_visit_date,omitempty"`
	ServiceType   *string    `json:"service_type,omitempty"`
	JobID         *string    `json:"job_id,omitempty"`
	OptedOut      *bool      `json:"opted_out,omitempty"`
}
