// internal/interfaces/event_repository.go
package interfaces

import (
	"context"

	"localboost/internal/models"
)

// EventRepository appends to and reads the append-only activity log.
// There is deliberately no update or delete.
type EventRepository interface {
	Append(ctx context.Context, event *models.Event) error
	ListByCampaign(ctx context.Context, campaignID string) ([]models.Event, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Event, error)
}
