// internal/engine/templatequality.go
package engine

import (
	"fmt"
	"strings"

	"localboost/internal/models"
)

type templateSlot struct {
	key    string
	text   string
	isSMS  bool
	maxLen int
}

// EvaluateTemplateQuality grades each of the four template slots
// independently. The worst finding decides label and severity; details keep
// every observation.
func EvaluateTemplateQuality(campaign models.Campaign, templates models.MessageTemplates) []models.TemplateQuality {
	slots := []templateSlot{
		{key: "smsShort", text: templates.SMSShort, isSMS: true, maxLen: smsShortMaxLen},
		{key: "smsStandard", text: templates.SMSStandard, isSMS: true, maxLen: smsStandardMaxLen},
		{key: "email", text: templates.EmailBody, isSMS: false},
		{key: "followUpSms", text: templates.FollowUpSMS, isSMS: true, maxLen: followUpSMSMaxLen},
	}

	out := make([]models.TemplateQuality, 0, len(slots))
	for _, slot := range slots {
		out = append(out, gradeSlot(campaign, templates, slot))
	}
	return out
}

func gradeSlot(campaign models.Campaign, templates models.MessageTemplates, slot templateSlot) models.TemplateQuality {
	q := models.TemplateQuality{
		TemplateKey: slot.key,
		Label:       models.LabelGood,
		Severity:    models.SeverityInfo,
		Details:     []string{},
	}

	record := func(label models.TemplateLabel, severity models.CheckSeverity, detail, suggestion string) {
		q.Details = append(q.Details, detail)
		if severityRank(severity) > severityRank(q.Severity) {
			q.Severity = severity
			q.Label = label
			q.Suggestion = suggestion
		}
	}

	if slot.isSMS && !strings.Contains(strings.ToUpper(slot.text), "STOP") {
		record(models.LabelMissingOptOut, models.SeverityCritical,
			"No STOP opt-out clause found",
			"Append \"Reply STOP to opt out\" so recipients can unsubscribe.")
	}

	if slot.maxLen > 0 && len(slot.text) > slot.maxLen {
		record(models.LabelTooLong, models.SeverityWarning,
			fmt.Sprintf("Message is %d characters, over the %d limit", len(slot.text), slot.maxLen),
			"Shorten the message to avoid split or truncated delivery.")
	}

	if slot.key == "email" && len(templates.EmailSubject) > emailSubjectMax {
		record(models.LabelTooLong, models.SeverityWarning,
			fmt.Sprintf("Subject is %d characters, over the %d limit", len(templates.EmailSubject), emailSubjectMax),
			"Keep the subject under 60 characters so it is not cut off.")
	}

	if campaign.ReviewLink != "" && !strings.Contains(slot.text, campaign.ReviewLink) {
		record(models.LabelLinkIssue, models.SeverityCritical,
			"Review link is missing from the message",
			"Include the review link so customers can act on the request.")
	} else if campaign.ReviewLink != "" && !hasLinkContext(slot.text) {
		record(models.LabelNeedsReview, models.SeverityWarning,
			"Link appears without context words like \"review\" or \"feedback\"",
			"Add a short sentence explaining why you are sharing the link.")
	}

	if len(q.Details) == 0 {
		q.Details = append(q.Details, "Looks good: opt-out, length, and link all check out")
	}
	return q
}

func hasLinkContext(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "review") || strings.Contains(lower, "feedback") ||
		strings.Contains(lower, "reseña") || strings.Contains(lower, "opinión")
}

func severityRank(s models.CheckSeverity) int {
	switch s {
	case models.SeverityCritical:
		return 3
	case models.SeverityWarning:
		return 2
	case models.SeverityError:
		return 2
	default:
		return 1
	}
}
