// internal/engine/status.go
package engine

import (
	"sort"
	"time"

	"localboost/internal/models"
)

// ResolveCustomerStatus folds a customer's events, oldest first, into a
// lifecycle status. Each recognized event overwrites the running status, so
// the final value is whichever matching event happened last in time: a late
// "sent" can regress a customer who already reviewed. That fold order is
// load-bearing for downstream consumers; do not reorder by stage.
func ResolveCustomerStatus(c models.Customer, events []models.Event) models.CustomerWithStatus {
	own := make([]models.Event, 0, 4)
	for _, e := range events {
		if e.CustomerID == c.ID {
			own = append(own, e)
		}
	}
	sort.SliceStable(own, func(i, j int) bool {
		return own[i].Timestamp.Before(own[j].Timestamp)
	})

	out := models.CustomerWithStatus{Customer: c, Status: models.StatusQueued}
	for _, e := range own {
		ts := e.Timestamp
		switch e.Type {
		case models.EventOptedOut:
			out.Status = models.StatusOptedOut
		case models.EventReviewed:
			out.Status = models.StatusReviewed
			out.LastReviewedAt = cloneTime(ts)
		case models.EventClicked:
			out.Status = models.StatusClicked
			out.LastClickedAt = cloneTime(ts)
		case models.EventSent:
			out.Status = models.StatusSent
			out.LastSentAt = cloneTime(ts)
		}
	}

	// The customer-level flag wins over anything in the log.
	if c.OptedOut {
		out.Status = models.StatusOptedOut
	}

	out.NeedsFollowUp = out.Status == models.StatusSent || out.Status == models.StatusClicked
	return out
}

// ResolveAllStatuses maps every customer through ResolveCustomerStatus,
// preserving input order.
func ResolveAllStatuses(customers []models.Customer, events []models.Event) []models.CustomerWithStatus {
	out := make([]models.CustomerWithStatus, 0, len(customers))
	for _, c := range customers {
		out = append(out, ResolveCustomerStatus(c, events))
	}
	return out
}

func cloneTime(t time.Time) *time.Time {
	tt := t
	return &tt
}
