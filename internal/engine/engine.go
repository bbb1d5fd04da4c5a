// internal/engine/engine.go
//
// Package engine computes everything a review-request campaign needs to run:
// message templates, the per-customer send queue, funnel metrics, quality
// checks, health scoring, and timing guidance. Every function is pure: the
// clock and the ID source are injected, and nothing here touches the network
// or disk, so evaluations for different campaigns can run concurrently
// without coordination.
package engine

import (
	"fmt"
	"sort"
	"time"

	"localboost/internal/models"
)

// Evaluate validates the campaign and assembles the full result. Validation
// problems are collected, never returned as errors: the caller gets a
// best-effort result alongside the list and decides whether to block.
func Evaluate(input models.EvaluationInput, now time.Time, ids IDSource) models.EvaluationResult {
	campaign := input.Campaign

	validationErrors := validateCampaign(campaign)

	templates := BuildTemplates(campaign)
	withStatus := ResolveAllStatuses(input.Customers, input.Events)
	queue := BuildSendQueue(campaign, withStatus, now, ids)
	metrics := AggregateFunnel(input.Customers, input.Events, queue)
	checks := EvaluateQualityChecks(campaign, templates, input.Customers)
	actions := nextActions(validationErrors, metrics, checks)
	health := ScoreCampaignHealth(campaign, templates, input.Customers)
	timeline := buildSendTimeline(queue)
	templateQuality := EvaluateTemplateQuality(campaign, templates)
	recommendation := RecommendForBusinessType(campaign.BusinessType)
	benchmarks := BuildGuidanceBenchmarks(campaign.Rules)

	return models.EvaluationResult{
		Templates:                  templates,
		SendQueue:                  queue,
		Metrics:                    metrics,
		QualityChecks:              checks,
		NextActions:                actions,
		ValidationErrors:           validationErrors,
		CampaignHealth:             health,
		SendTimeline:               timeline,
		TemplateQuality:            templateQuality,
		BusinessTypeRecommendation: recommendation,
		GuidanceBenchmarks:         benchmarks,
	}
}

func validateCampaign(c models.Campaign) []string {
	errs := []string{}

	if c.BusinessName == "" {
		errs = append(errs, "business name is required")
	}

	if c.ReviewLink == "" {
		errs = append(errs, "review link is required")
	} else if !isValidReviewLink(c.ReviewLink) {
		errs = append(errs, fmt.Sprintf("review link %q is not a valid URL", c.ReviewLink))
	}

	if c.Rules.SendDelayHours < 0 || c.Rules.SendDelayHours > 168 {
		errs = append(errs, fmt.Sprintf("send delay must be between 0 and 168 hours, got %d", c.Rules.SendDelayHours))
	}

	if c.Rules.FollowUpEnabled && (c.Rules.FollowUpDelayDays < 1 || c.Rules.FollowUpDelayDays > 30) {
		errs = append(errs, fmt.Sprintf("follow-up delay must be between 1 and 30 days, got %d", c.Rules.FollowUpDelayDays))
	}

	return errs
}

// buildSendTimeline buckets pending queue items by calendar day.
func buildSendTimeline(queue []models.SendQueueItem) []models.TimelineEntry {
	byDay := map[string]*models.TimelineEntry{}
	for _, item := range queue {
		if item.Status != models.QueueStatusPending {
			continue
		}
		day := item.ScheduledAt.Format("2006-01-02")
		entry, ok := byDay[day]
		if !ok {
			entry = &models.TimelineEntry{Date: day}
			byDay[day] = entry
		}
		if item.Channel == models.ChannelSMS {
			entry.SMS++
		} else {
			entry.Email++
		}
		entry.Total++
	}

	timeline := make([]models.TimelineEntry, 0, len(byDay))
	for _, entry := range byDay {
		timeline = append(timeline, *entry)
	}
	sort.Slice(timeline, func(i, j int) bool { return timeline[i].Date < timeline[j].Date })
	return timeline
}

func nextActions(validationErrors []string, metrics models.FunnelMetrics, checks []models.QualityCheck) []string {
	actions := []string{}

	if len(validationErrors) > 0 {
		actions = append(actions, "Fix the configuration errors before launching")
	}
	if metrics.Loaded == 0 {
		actions = append(actions, "Import or add customers to get started")
	}
	if unreachable := metrics.Loaded - metrics.Ready - metrics.OptedOut; unreachable > 0 {
		actions = append(actions, fmt.Sprintf("Add a phone number or email for %d unreachable customer(s)", unreachable))
	}
	for _, check := range checks {
		if check.Severity == models.SeverityError {
			actions = append(actions, check.SuggestedFix)
		}
	}
	if metrics.Queued > 0 {
		actions = append(actions, fmt.Sprintf("Review the %d scheduled message(s) and launch when ready", metrics.Queued))
	}
	if len(actions) == 0 {
		actions = append(actions, "Everything looks ready, launch the campaign")
	}

	return actions
}
