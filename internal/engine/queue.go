// internal/engine/queue.go
package engine

import (
	"fmt"
	"sort"
	"time"

	"localboost/internal/models"
)

// BuildSendQueue turns customers-with-status into an ordered list of
// scheduled items for one campaign. One initial item per eligible customer,
// plus an optional follow-up. Customers under the frequency cap get a single
// skipped item carrying the reason. The result is stable-sorted by
// scheduled time.
func BuildSendQueue(campaign models.Campaign, customers []models.CustomerWithStatus, now time.Time, ids IDSource) []models.SendQueueItem {
	rules := campaign.Rules
	queue := make([]models.SendQueueItem, 0, len(customers))

	for _, c := range customers {
		if c.OptedOut || c.Status == models.StatusReviewed || !c.HasContact() {
			continue
		}

		channel := models.ChannelEmail
		variant := models.VariantEmail
		if c.Phone != "" {
			channel = models.ChannelSMS
			variant = models.VariantSMSStandard
		}

		scheduledAt := baseScheduleTime(rules, c, now)
		if IsWithinQuietHours(scheduledAt, rules.QuietHours) {
			scheduledAt = NextAllowedTime(scheduledAt, rules.QuietHours)
		}

		if c.LastSentAt != nil {
			daysSince := int(now.Sub(*c.LastSentAt).Hours() / 24)
			if daysSince < rules.FrequencyCapDays {
				queue = append(queue, models.SendQueueItem{
					ID:            ids.NewID(),
					CampaignID:    campaign.ID,
					CustomerID:    c.ID,
					ScheduledAt:   scheduledAt,
					Variant:       variant,
					Channel:       channel,
					Status:        models.QueueStatusSkipped,
					SkippedReason: fmt.Sprintf("Frequency cap: last sent %d days ago", daysSince),
				})
				continue
			}
		}

		queue = append(queue, models.SendQueueItem{
			ID:          ids.NewID(),
			CampaignID:  campaign.ID,
			CustomerID:  c.ID,
			ScheduledAt: scheduledAt,
			Variant:     variant,
			Channel:     channel,
			Status:      models.QueueStatusPending,
		})

		if rules.FollowUpEnabled && (c.Status == models.StatusQueued || c.NeedsFollowUp) {
			followUpAt := scheduledAt.AddDate(0, 0, rules.FollowUpDelayDays)
			if IsWithinQuietHours(followUpAt, rules.QuietHours) {
				followUpAt = NextAllowedTime(followUpAt, rules.QuietHours)
			}

			followUpChannel := models.ChannelEmail
			if c.Phone != "" {
				followUpChannel = models.ChannelSMS
			}

			queue = append(queue, models.SendQueueItem{
				ID:          ids.NewID(),
				CampaignID:  campaign.ID,
				CustomerID:  c.ID,
				ScheduledAt: followUpAt,
				Variant:     models.VariantFollowUpSMS,
				Channel:     followUpChannel,
				Status:      models.QueueStatusPending,
			})
		}
	}

	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].ScheduledAt.Before(queue[j].ScheduledAt)
	})
	return queue
}

// baseScheduleTime applies the trigger rule. Triggers that count from a
// service or payment use the last visit date plus the configured delay;
// without a visit date, or for manual and unrecognized triggers, the send
// is due immediately.
func baseScheduleTime(rules models.CampaignRules, c models.CustomerWithStatus, now time.Time) time.Time {
	switch rules.TriggerType {
	case models.TriggerAfterService, models.TriggerAfterPayment:
		if c.LastVisitDate != nil {
			return c.LastVisitDate.Add(time.Duration(rules.SendDelayHours) * time.Hour)
		}
		return now
	default:
		return now
	}
}
