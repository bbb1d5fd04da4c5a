package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"localboost/internal/models"
)

func testCampaign() models.Campaign {
	return models.Campaign{
		ID:           "camp-1",
		BusinessName: "Rosa's Bakery",
		BusinessType: "bakery",
		Platform:     "google",
		ReviewLink:   "https://g.page/r/rosas-bakery/review",
		Language:     "en",
		Tone:         "friendly",
		Rules: models.CampaignRules{
			TriggerType:       models.TriggerManual,
			SendDelayHours:    24,
			FollowUpEnabled:   false,
			FollowUpDelayDays: 3,
			FrequencyCapDays:  30,
			QuietHours:        models.QuietHours{Start: "22:00", End: "01:00"},
		},
	}
}

func withStatus(c models.Customer, status models.CustomerStatus) models.CustomerWithStatus {
	out := models.CustomerWithStatus{Customer: c, Status: status}
	out.NeedsFollowUp = status == models.StatusSent || status == models.StatusClicked
	return out
}

func TestBuildSendQueueSkipsIneligibleCustomers(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	customers := []models.CustomerWithStatus{
		withStatus(models.Customer{ID: "opted", Phone: "+15551230001", OptedOut: true}, models.StatusOptedOut),
		withStatus(models.Customer{ID: "reviewed", Phone: "+15551230002"}, models.StatusReviewed),
		withStatus(models.Customer{ID: "no-contact"}, models.StatusQueued),
	}

	queue := BuildSendQueue(testCampaign(), customers, now, &SequenceIDs{Prefix: "q"})

	require.Empty(t, queue)
}

func TestBuildSendQueueChannelSelection(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	customers := []models.CustomerWithStatus{
		withStatus(models.Customer{ID: "both", Phone: "+15551230001", Email: "both@example.com"}, models.StatusQueued),
		withStatus(models.Customer{ID: "email-only", Email: "mail@example.com"}, models.StatusQueued),
	}

	queue := BuildSendQueue(testCampaign(), customers, now, &SequenceIDs{Prefix: "q"})

	require.Len(t, queue, 2)
	byCustomer := map[string]models.SendQueueItem{}
	for _, item := range queue {
		byCustomer[item.CustomerID] = item
	}
	require.Equal(t, models.ChannelSMS, byCustomer["both"].Channel)
	require.Equal(t, models.VariantSMSStandard, byCustomer["both"].Variant)
	require.Equal(t, models.ChannelEmail, byCustomer["email-only"].Channel)
	require.Equal(t, models.VariantEmail, byCustomer["email-only"].Variant)
}

func TestBuildSendQueueTriggerScheduling(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	visit := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)

	campaign := testCampaign()
	campaign.Rules.TriggerType = models.TriggerAfterService
	campaign.Rules.SendDelayHours = 48

	customers := []models.CustomerWithStatus{
		withStatus(models.Customer{ID: "visited", Phone: "+15551230001", LastVisitDate: &visit}, models.StatusQueued),
		withStatus(models.Customer{ID: "no-visit", Phone: "+15551230002"}, models.StatusQueued),
	}

	queue := BuildSendQueue(campaign, customers, now, &SequenceIDs{Prefix: "q"})

	require.Len(t, queue, 2)
	byCustomer := map[string]models.SendQueueItem{}
	for _, item := range queue {
		byCustomer[item.CustomerID] = item
	}
	require.Equal(t, visit.Add(48*time.Hour), byCustomer["visited"].ScheduledAt)
	require.Equal(t, now, byCustomer["no-visit"].ScheduledAt)
}

func TestBuildSendQueueQuietHoursShift(t *testing.T) {
	// 23:30 falls inside the overnight window, so the send moves past the
	// window end. Same-day 01:00 is already behind us, hence next day.
	now := time.Date(2026, 3, 2, 23, 30, 0, 0, time.UTC)
	customers := []models.CustomerWithStatus{
		withStatus(models.Customer{ID: "c1", Phone: "+15551230001"}, models.StatusQueued),
	}

	queue := BuildSendQueue(testCampaign(), customers, now, &SequenceIDs{Prefix: "q"})

	require.Len(t, queue, 1)
	require.Equal(t, time.Date(2026, 3, 3, 1, 0, 0, 0, time.UTC), queue[0].ScheduledAt)
}

func TestBuildSendQueueFrequencyCapSkips(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	lastSent := now.AddDate(0, 0, -5)

	c := withStatus(models.Customer{ID: "capped", Phone: "+15551230001"}, models.StatusSent)
	c.LastSentAt = &lastSent

	campaign := testCampaign()
	campaign.Rules.FollowUpEnabled = true

	queue := BuildSendQueue(campaign, []models.CustomerWithStatus{c}, now, &SequenceIDs{Prefix: "q"})

	// Skipped item only; the follow-up must not be emitted for a capped
	// customer.
	require.Len(t, queue, 1)
	require.Equal(t, models.QueueStatusSkipped, queue[0].Status)
	require.Contains(t, queue[0].SkippedReason, "5 days ago")
}

func TestBuildSendQueueCapExpiredSends(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	lastSent := now.AddDate(0, 0, -31)

	c := withStatus(models.Customer{ID: "fresh", Phone: "+15551230001"}, models.StatusSent)
	c.LastSentAt = &lastSent

	queue := BuildSendQueue(testCampaign(), []models.CustomerWithStatus{c}, now, &SequenceIDs{Prefix: "q"})

	require.Len(t, queue, 1)
	require.Equal(t, models.QueueStatusPending, queue[0].Status)
	require.Empty(t, queue[0].SkippedReason)
}

func TestBuildSendQueueFollowUpItem(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	campaign := testCampaign()
	campaign.Rules.FollowUpEnabled = true
	campaign.Rules.FollowUpDelayDays = 3

	customers := []models.CustomerWithStatus{
		withStatus(models.Customer{ID: "new", Phone: "+15551230001"}, models.StatusQueued),
	}

	queue := BuildSendQueue(campaign, customers, now, &SequenceIDs{Prefix: "q"})

	require.Len(t, queue, 2)
	require.Equal(t, models.VariantSMSStandard, queue[0].Variant)
	require.Equal(t, models.VariantFollowUpSMS, queue[1].Variant)
	require.Equal(t, models.ChannelSMS, queue[1].Channel)
	require.Equal(t, now.AddDate(0, 0, 3), queue[1].ScheduledAt)
}

func TestBuildSendQueueNoFollowUpForClickedDisabled(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	customers := []models.CustomerWithStatus{
		withStatus(models.Customer{ID: "clicked", Phone: "+15551230001"}, models.StatusClicked),
	}

	queue := BuildSendQueue(testCampaign(), customers, now, &SequenceIDs{Prefix: "q"})

	require.Len(t, queue, 1)
}

func TestBuildSendQueueSortedByScheduledAt(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	campaign := testCampaign()
	campaign.Rules.TriggerType = models.TriggerAfterService
	campaign.Rules.SendDelayHours = 24
	campaign.Rules.FollowUpEnabled = true
	campaign.Rules.FollowUpDelayDays = 2

	var customers []models.CustomerWithStatus
	for i := 0; i < 5; i++ {
		visit := now.AddDate(0, 0, -i)
		customers = append(customers, withStatus(models.Customer{
			ID:            fmt.Sprintf("c%d", i),
			Phone:         fmt.Sprintf("+1555123%04d", i),
			LastVisitDate: &visit,
		}, models.StatusQueued))
	}

	queue := BuildSendQueue(campaign, customers, now, &SequenceIDs{Prefix: "q"})

	require.NotEmpty(t, queue)
	for i := 1; i < len(queue); i++ {
		require.False(t, queue[i].ScheduledAt.Before(queue[i-1].ScheduledAt),
			"queue out of order at %d", i)
	}
}

func TestBuildSendQueueDeterministicWithSeededIDs(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	customers := []models.CustomerWithStatus{
		withStatus(models.Customer{ID: "a", Phone: "+15551230001"}, models.StatusQueued),
		withStatus(models.Customer{ID: "b", Email: "b@example.com"}, models.StatusQueued),
	}

	first := BuildSendQueue(testCampaign(), customers, now, &SequenceIDs{Prefix: "q"})
	second := BuildSendQueue(testCampaign(), customers, now, &SequenceIDs{Prefix: "q"})

	require.Equal(t, first, second)
}
