// internal/interfaces/queue_repository.go
package interfaces

import (
	"context"

	"localboost/internal/models"
)

// QueueRepository persists computed send-queue items. Funnel counts derived
// here come from stored item statuses, independent of the engine's
// event-derived counts.
type QueueRepository interface {
	ReplaceForCampaign(ctx context.Context, campaignID string, items []models.SendQueueItem) error
	ListByCampaign(ctx context.Context, campaignID string) ([]models.SendQueueItem, error)
	UpdateStatus(ctx context.Context, id string, status models.QueueItemStatus) error
	CountByStatus(ctx context.Context, campaignID string) (map[models.QueueItemStatus]int, error)
}
