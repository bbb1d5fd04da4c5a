// internal/engine/quality.go
package engine

import (
	"fmt"
	"net/url"

	"localboost/internal/models"
)

const (
	smsShortMaxLen    = 240
	smsStandardMaxLen = 420
	followUpSMSMaxLen = 320
	emailSubjectMax   = 60
)

// isValidReviewLink accepts only absolute http(s) URLs with a host.
func isValidReviewLink(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// EvaluateQualityChecks inspects the campaign configuration, templates, and
// customer data for soft problems. Checks never block queue computation.
func EvaluateQualityChecks(campaign models.Campaign, templates models.MessageTemplates, customers []models.Customer) []models.QualityCheck {
	checks := []models.QualityCheck{}

	if !isValidReviewLink(campaign.ReviewLink) {
		checks = append(checks, models.QualityCheck{
			ID:           "invalid-review-link",
			Severity:     models.SeverityError,
			Title:        "Review link is not a valid URL",
			Description:  fmt.Sprintf("%q cannot be opened by customers.", campaign.ReviewLink),
			SuggestedFix: "Paste the full review URL from your platform profile, including https://.",
		})
	}

	if len(templates.SMSShort) > smsShortMaxLen {
		checks = append(checks, models.QualityCheck{
			ID:           "sms-short-too-long",
			Severity:     models.SeverityWarning,
			Title:        "Short SMS exceeds recommended length",
			Description:  fmt.Sprintf("Short SMS is %d characters; keep it under %d to avoid multi-part sends.", len(templates.SMSShort), smsShortMaxLen),
			SuggestedFix: "Trim the greeting or move detail into the standard SMS.",
		})
	}

	if len(templates.SMSStandard) > smsStandardMaxLen {
		checks = append(checks, models.QualityCheck{
			ID:           "sms-standard-too-long",
			Severity:     models.SeverityWarning,
			Title:        "Standard SMS exceeds recommended length",
			Description:  fmt.Sprintf("Standard SMS is %d characters; keep it under %d.", len(templates.SMSStandard), smsStandardMaxLen),
			SuggestedFix: "Shorten the message or use the email variant for longer copy.",
		})
	}

	if campaign.Rules.FollowUpEnabled && campaign.Rules.FollowUpDelayDays < 3 {
		checks = append(checks, models.QualityCheck{
			ID:           "follow-up-too-soon",
			Severity:     models.SeverityWarning,
			Title:        "Follow-up arrives very quickly",
			Description:  fmt.Sprintf("Follow-up is sent %d day(s) after the first message; customers may read it as pushy.", campaign.Rules.FollowUpDelayDays),
			SuggestedFix: "Wait at least 3 days before following up.",
		})
	}

	if check, bad := quietHoursMisconfigured(campaign.Rules.QuietHours); bad {
		checks = append(checks, check)
	}

	if missing := countMissingContact(customers); missing > 0 {
		pct := missing * 100 / len(customers)
		severity := models.SeverityWarning
		if pct > 20 {
			severity = models.SeverityError
		}
		checks = append(checks, models.QualityCheck{
			ID:           "missing-contact-info",
			Severity:     severity,
			Title:        "Customers without phone or email",
			Description:  fmt.Sprintf("%d customer(s) (%d%%) have neither a phone number nor an email and cannot be reached.", missing, pct),
			SuggestedFix: "Fill in a phone number or email for these customers, or remove them from the list.",
		})
	}

	return checks
}

// quietHoursMisconfigured flags a start-after-end window whose end is late
// enough in the day that it cannot plausibly be an overnight window. Ends
// within the first hour after midnight are treated as intentional wraps.
func quietHoursMisconfigured(qh models.QuietHours) (models.QualityCheck, bool) {
	start, okStart := parseClock(qh.Start)
	end, okEnd := parseClock(qh.End)
	if !okStart || !okEnd {
		return models.QualityCheck{}, false
	}
	if start > end && end > 60 {
		return models.QualityCheck{
			ID:           "quiet-hours-misconfigured",
			Severity:     models.SeverityWarning,
			Title:        "Quiet hours look inverted",
			Description:  fmt.Sprintf("Quiet hours run from %s to %s, which blocks most of the day.", qh.Start, qh.End),
			SuggestedFix: "For an overnight window, set start to the evening (e.g. 21:00) and end to the morning (e.g. 08:00).",
		}, true
	}
	return models.QualityCheck{}, false
}

func countMissingContact(customers []models.Customer) int {
	missing := 0
	for _, c := range customers {
		if !c.HasContact() {
			missing++
		}
	}
	return missing
}
