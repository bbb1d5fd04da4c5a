// internal/models/queue.go
package models

import "time"

type MessageVariant string

const (
	VariantSMSShort    MessageVariant = "smsShort"
	VariantSMSStandard MessageVariant = "smsStandard"
	VariantEmail       MessageVariant = "email"
	VariantFollowUpSMS MessageVariant = "followUpSms"
)

type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
)

type QueueItemStatus string

const (
	QueueStatusPending QueueItemStatus = "pending"
	QueueStatusSkipped QueueItemStatus = "skipped"
	QueueStatusSent    QueueItemStatus = "sent"
	QueueStatusFailed  QueueItemStatus = "failed"
)

// SendQueueItem is one scheduled message for one customer. Skipped items
// always carry a human-readable reason.
type SendQueueItem struct {
	ID            string          `json:"id"`
	CampaignID    string          `json:"campaign_id,omitempty"`
	CustomerID    string          `json:"customer_id"`
	ScheduledAt   time.Time       `json:"scheduled_at"`
	Variant       MessageVariant  `json:"variant"`
	Channel       Channel         `json:"channel"`
	Status        QueueItemStatus `json:"status"`
	SkippedReason string          `json:"skipped_reason,omitempty"`
}

type UpdateQueueItemRequest struct {
	Status QueueItemStatus `json:"status" validate:"required,oneof=pending skipped sent failed"`
}
