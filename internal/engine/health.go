// internal/engine/health.go
package engine

import (
	"fmt"
	"strings"

	"localboost/internal/models"
)

// ScoreCampaignHealth produces the 0-100 weighted deduction score with one
// reason per finding. Status bands: >=80 Good, >=60 Needs Attention,
// otherwise At Risk.
func ScoreCampaignHealth(campaign models.Campaign, templates models.MessageTemplates, customers []models.Customer) models.CampaignHealth {
	score := 100
	reasons := []string{}
	deductions := 0

	deduct := func(points int, reason string) {
		score -= points
		deductions++
		reasons = append(reasons, reason)
	}

	if !isValidReviewLink(campaign.ReviewLink) {
		deduct(30, "Review link is missing or not a valid URL")
	}

	if len(customers) > 0 {
		reachable := 0
		for _, c := range customers {
			if c.HasContact() {
				reachable++
			}
		}
		pct := reachable * 100 / len(customers)
		switch {
		case pct < 40:
			deduct(25, fmt.Sprintf("Only %d%% of customers have contact info", pct))
		case pct < 60:
			deduct(15, fmt.Sprintf("Just %d%% of customers have contact info", pct))
		default:
			reasons = append(reasons, fmt.Sprintf("Good contact coverage: %d%% of customers reachable", pct))
		}
	}

	if campaign.Rules.FollowUpEnabled && campaign.Rules.FollowUpDelayDays < 2 {
		deduct(10, "Follow-up delay under 2 days risks annoying customers")
	}

	if _, bad := quietHoursMisconfigured(campaign.Rules.QuietHours); bad {
		deduct(10, "Quiet hours window appears misconfigured")
	}

	if missingStopClause(templates) {
		deduct(20, "An SMS template is missing the STOP opt-out notice")
	}

	if len(templates.SMSShort) > smsShortMaxLen {
		deduct(5, "Short SMS template exceeds recommended length")
	}
	if len(templates.SMSStandard) > smsStandardMaxLen {
		deduct(5, "Standard SMS template exceeds recommended length")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	status := models.HealthAtRisk
	switch {
	case score >= 80:
		status = models.HealthGood
	case score >= 60:
		status = models.HealthNeedsAttention
	}

	if deductions == 0 {
		reasons = []string{"All checks passed"}
	}

	return models.CampaignHealth{Status: status, Score: score, Reasons: reasons}
}

func missingStopClause(templates models.MessageTemplates) bool {
	for _, sms := range []string{templates.SMSShort, templates.SMSStandard, templates.FollowUpSMS} {
		if !strings.Contains(strings.ToUpper(sms), "STOP") {
			return true
		}
	}
	return false
}
