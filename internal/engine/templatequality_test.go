package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"localboost/internal/models"
)

func findSlot(t *testing.T, results []models.TemplateQuality, key string) models.TemplateQuality {
	t.Helper()
	for _, r := range results {
		if r.TemplateKey == key {
			return r
		}
	}
	t.Fatalf("no result for slot %q", key)
	return models.TemplateQuality{}
}

func TestTemplateQualityDefaultsAreGood(t *testing.T) {
	campaign := testCampaign()
	templates := BuildTemplates(campaign)

	results := EvaluateTemplateQuality(campaign, templates)

	require.Len(t, results, 4)
	for _, r := range results {
		require.Equal(t, models.LabelGood, r.Label, "slot %s", r.TemplateKey)
		require.Equal(t, models.SeverityInfo, r.Severity)
		require.NotEmpty(t, r.Details)
	}
}

func TestTemplateQualityMissingStopIsCritical(t *testing.T) {
	campaign := testCampaign()
	templates := BuildTemplates(campaign)
	templates.SMSShort = "Please review us at " + campaign.ReviewLink

	results := EvaluateTemplateQuality(campaign, templates)
	slot := findSlot(t, results, "smsShort")

	require.Equal(t, models.LabelMissingOptOut, slot.Label)
	require.Equal(t, models.SeverityCritical, slot.Severity)
}

func TestTemplateQualityEmailSkipsStopCheck(t *testing.T) {
	campaign := testCampaign()
	templates := BuildTemplates(campaign)
	// Emails have no STOP clause by design; the slot must stay Good.
	require.NotContains(t, strings.ToUpper(templates.EmailBody), "STOP")

	results := EvaluateTemplateQuality(campaign, templates)
	slot := findSlot(t, results, "email")

	require.Equal(t, models.LabelGood, slot.Label)
}

func TestTemplateQualityMissingLinkIsCritical(t *testing.T) {
	campaign := testCampaign()
	templates := BuildTemplates(campaign)
	templates.FollowUpSMS = "Just checking in! Reply STOP to opt out."

	results := EvaluateTemplateQuality(campaign, templates)
	slot := findSlot(t, results, "followUpSms")

	require.Equal(t, models.LabelLinkIssue, slot.Label)
	require.Equal(t, models.SeverityCritical, slot.Severity)
}

func TestTemplateQualityLinkWithoutContext(t *testing.T) {
	campaign := testCampaign()
	templates := BuildTemplates(campaign)
	templates.SMSStandard = "Hi from the shop! " + campaign.ReviewLink + " Reply STOP to opt out."

	results := EvaluateTemplateQuality(campaign, templates)
	slot := findSlot(t, results, "smsStandard")

	require.Equal(t, models.LabelNeedsReview, slot.Label)
	require.Equal(t, models.SeverityWarning, slot.Severity)
}

func TestTemplateQualityTooLong(t *testing.T) {
	campaign := testCampaign()
	templates := BuildTemplates(campaign)
	templates.SMSShort = "Please leave a review: " + campaign.ReviewLink +
		" Reply STOP to opt out. " + strings.Repeat("thanks ", 40)

	results := EvaluateTemplateQuality(campaign, templates)
	slot := findSlot(t, results, "smsShort")

	require.Equal(t, models.LabelTooLong, slot.Label)
	require.Equal(t, models.SeverityWarning, slot.Severity)
}

func TestTemplateQualityWorstFindingWins(t *testing.T) {
	campaign := testCampaign()
	templates := BuildTemplates(campaign)
	// Over length AND missing STOP: critical outranks warning.
	templates.SMSShort = "Please review us: " + campaign.ReviewLink + " " + strings.Repeat("x", smsShortMaxLen)

	results := EvaluateTemplateQuality(campaign, templates)
	slot := findSlot(t, results, "smsShort")

	require.Equal(t, models.LabelMissingOptOut, slot.Label)
	require.Equal(t, models.SeverityCritical, slot.Severity)
	require.GreaterOrEqual(t, len(slot.Details), 2)
}

func TestTemplateQualityLongEmailSubject(t *testing.T) {
	campaign := testCampaign()
	templates := BuildTemplates(campaign)
	templates.EmailSubject = strings.Repeat("read me ", 10)

	results := EvaluateTemplateQuality(campaign, templates)
	slot := findSlot(t, results, "email")

	require.Equal(t, models.LabelTooLong, slot.Label)
}
