// internal/engine/metrics.go
package engine

import "localboost/internal/models"

// AggregateFunnel counts the funnel stages. Loaded/ready/optedOut come from
// the customer list, queued from live queue state, and sent/clicked/reviewed
// from the raw event log. The mixed sourcing is deliberate: persistence
// re-derives the send counts from stored queue items on its own, so the two
// must stay independent here.
func AggregateFunnel(customers []models.Customer, events []models.Event, queue []models.SendQueueItem) models.FunnelMetrics {
	var m models.FunnelMetrics
	m.Loaded = len(customers)

	for _, c := range customers {
		if c.OptedOut {
			m.OptedOut++
			continue
		}
		if c.HasContact() {
			m.Ready++
		}
	}

	for _, item := range queue {
		if item.Status == models.QueueStatusPending {
			m.Queued++
		}
	}

	for _, e := range events {
		switch e.Type {
		case models.EventSent:
			m.Sent++
		case models.EventClicked:
			m.Clicked++
		case models.EventReviewed:
			m.Reviewed++
		}
	}

	return m
}
