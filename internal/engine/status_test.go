package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"localboost/internal/models"
)

func statusEvent(customerID string, typ models.EventType, at time.Time) models.Event {
	return models.Event{ID: "e-" + string(typ), CustomerID: customerID, Type: typ, Timestamp: at}
}

func TestResolveCustomerStatusNoEvents(t *testing.T) {
	got := ResolveCustomerStatus(models.Customer{ID: "c1"}, nil)

	require.Equal(t, models.StatusQueued, got.Status)
	require.False(t, got.NeedsFollowUp)
	require.Nil(t, got.LastSentAt)
}

func TestResolveCustomerStatusProgression(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	events := []models.Event{
		statusEvent("c1", models.EventSent, base),
		statusEvent("c1", models.EventClicked, base.Add(2*time.Hour)),
		statusEvent("c1", models.EventReviewed, base.Add(26*time.Hour)),
	}

	got := ResolveCustomerStatus(models.Customer{ID: "c1"}, events)

	require.Equal(t, models.StatusReviewed, got.Status)
	require.False(t, got.NeedsFollowUp)
	require.NotNil(t, got.LastSentAt)
	require.Equal(t, base, *got.LastSentAt)
	require.Equal(t, base.Add(26*time.Hour), *got.LastReviewedAt)
}

// The fold is chronological, not stage-ordered: a later sent event pulls a
// reviewed customer back to sent. Documented behavior, pending a product
// decision on whether reviewed should be terminal.
func TestResolveCustomerStatusLastEventWins(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	events := []models.Event{
		statusEvent("c1", models.EventReviewed, base),
		statusEvent("c1", models.EventSent, base.Add(48*time.Hour)),
	}

	got := ResolveCustomerStatus(models.Customer{ID: "c1"}, events)

	require.Equal(t, models.StatusSent, got.Status)
	require.True(t, got.NeedsFollowUp)
}

func TestResolveCustomerStatusInputOrderIrrelevant(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	events := []models.Event{
		statusEvent("c1", models.EventClicked, base.Add(time.Hour)),
		statusEvent("c1", models.EventSent, base),
	}

	got := ResolveCustomerStatus(models.Customer{ID: "c1"}, events)

	require.Equal(t, models.StatusClicked, got.Status)
	require.True(t, got.NeedsFollowUp)
}

func TestResolveCustomerStatusOptOutFlagWins(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	events := []models.Event{
		statusEvent("c1", models.EventSent, base),
	}

	got := ResolveCustomerStatus(models.Customer{ID: "c1", OptedOut: true}, events)

	require.Equal(t, models.StatusOptedOut, got.Status)
	require.False(t, got.NeedsFollowUp)
}

func TestResolveCustomerStatusIgnoresOtherCustomers(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	events := []models.Event{
		statusEvent("c2", models.EventReviewed, base),
		statusEvent("c1", models.EventSent, base),
	}

	got := ResolveCustomerStatus(models.Customer{ID: "c1"}, events)

	require.Equal(t, models.StatusSent, got.Status)
	require.Nil(t, got.LastReviewedAt)
}

func TestResolveAllStatusesPreservesOrder(t *testing.T) {
	customers := []models.Customer{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	got := ResolveAllStatuses(customers, nil)

	require.Len(t, got, 3)
	require.Equal(t, "a", got[0].ID)
	require.Equal(t, "c", got[2].ID)
}
