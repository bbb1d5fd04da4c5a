// internal/engine/benchmarks.go
package engine

import (
	"fmt"
	"strings"

	"localboost/internal/models"
)

type businessCategory struct {
	name              string
	keywords          []string
	sendDelayHours    models.IntRange
	followUpDelayDays models.IntRange
	suggestedTones    []string
}

// Order matters: first keyword hit wins.
var businessCategories = []businessCategory{
	{
		name:              "restaurant/food",
		keywords:          []string{"restaurant", "cafe", "coffee", "bakery", "pizza", "diner", "bar", "food", "catering"},
		sendDelayHours:    models.IntRange{Min: 2, Max: 6, Default: 4},
		followUpDelayDays: models.IntRange{Min: 2, Max: 3, Default: 3},
		suggestedTones:    []string{"friendly", "casual"},
	},
	{
		name:              "home-services",
		keywords:          []string{"plumb", "hvac", "roof", "landscap", "clean", "pest", "handyman", "remodel"},
		sendDelayHours:    models.IntRange{Min: 24, Max: 48, Default: 24},
		followUpDelayDays: models.IntRange{Min: 3, Max: 5, Default: 4},
		suggestedTones:    []string{"friendly", "professional"},
	},
	{
		name:              "beauty/wellness",
		keywords:          []string{"salon", "spa", "nail", "barber", "massage", "beauty", "wellness", "yoga"},
		sendDelayHours:    models.IntRange{Min: 4, Max: 24, Default: 12},
		followUpDelayDays: models.IntRange{Min: 2, Max: 4, Default: 3},
		suggestedTones:    []string{"friendly", "casual"},
	},
	{
		name:              "auto/trades",
		keywords:          []string{"auto", "car", "mechanic", "tire", "garage", "detailing", "towing", "welding"},
		sendDelayHours:    models.IntRange{Min: 24, Max: 72, Default: 48},
		followUpDelayDays: models.IntRange{Min: 3, Max: 5, Default: 4},
		suggestedTones:    []string{"professional", "friendly"},
	},
	{
		name:              "medical",
		keywords:          []string{"dental", "dentist", "clinic", "medical", "chiro", "optom", "vet", "therapy"},
		sendDelayHours:    models.IntRange{Min: 24, Max: 72, Default: 48},
		followUpDelayDays: models.IntRange{Min: 4, Max: 7, Default: 5},
		suggestedTones:    []string{"professional"},
	},
	{
		name:              "retail",
		keywords:          []string{"shop", "store", "boutique", "retail", "market", "gift"},
		sendDelayHours:    models.IntRange{Min: 12, Max: 48, Default: 24},
		followUpDelayDays: models.IntRange{Min: 3, Max: 5, Default: 4},
		suggestedTones:    []string{"friendly", "casual"},
	},
}

// RecommendForBusinessType classifies a free-text business type by
// case-insensitive substring and returns timing guidance for that category.
// Returns nil when nothing matches.
func RecommendForBusinessType(businessType string) *models.BusinessTypeRecommendation {
	needle := strings.ToLower(strings.TrimSpace(businessType))
	if needle == "" {
		return nil
	}

	for _, cat := range businessCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(needle, kw) {
				return &models.BusinessTypeRecommendation{
					Category:          cat.name,
					SendDelayHours:    cat.sendDelayHours,
					FollowUpDelayDays: cat.followUpDelayDays,
					SuggestedTones:    cat.suggestedTones,
				}
			}
		}
	}
	return nil
}

// Fixed benchmark ranges the guidance compares against.
const (
	benchFollowUpMin = 2
	benchFollowUpMax = 4
	benchCapMin      = 30
	benchCapMax      = 90

	// Sending should happen roughly 9:00-19:00, so quiet hours ought to
	// end in the morning and start in the evening, each within an hour
	// of those bounds.
	benchQuietEndMin   = 8 * 60
	benchQuietEndMax   = 10 * 60
	benchQuietStartMin = 18 * 60
	benchQuietStartMax = 20 * 60
)

// BuildGuidanceBenchmarks compares the configured rules against fixed
// recommended ranges, one benchmark per rule.
func BuildGuidanceBenchmarks(rules models.CampaignRules) []models.GuidanceBenchmark {
	benchmarks := make([]models.GuidanceBenchmark, 0, 3)

	followUp := models.GuidanceBenchmark{
		ID:             "follow-up-delay",
		Category:       "Follow-up timing",
		Recommendation: fmt.Sprintf("Send the follow-up %d-%d days after the first message", benchFollowUpMin, benchFollowUpMax),
		CurrentValue:   fmt.Sprintf("%d days", rules.FollowUpDelayDays),
		IsWithinRange:  rules.FollowUpDelayDays >= benchFollowUpMin && rules.FollowUpDelayDays <= benchFollowUpMax,
	}
	if !followUp.IsWithinRange {
		followUp.Suggestion = "Set the follow-up delay to 2-4 days; sooner feels pushy, later gets forgotten."
	}
	benchmarks = append(benchmarks, followUp)

	quiet := models.GuidanceBenchmark{
		ID:             "quiet-hours-window",
		Category:       "Quiet hours",
		Recommendation: "Keep sends inside roughly 9:00-19:00 local time",
		CurrentValue:   fmt.Sprintf("%s-%s", rules.QuietHours.Start, rules.QuietHours.End),
		IsWithinRange:  quietWindowNearTarget(rules.QuietHours),
	}
	if !quiet.IsWithinRange {
		quiet.Suggestion = "An overnight quiet window such as 19:00-09:00 keeps messages in daytime hours."
	}
	benchmarks = append(benchmarks, quiet)

	cap := models.GuidanceBenchmark{
		ID:             "frequency-cap",
		Category:       "Frequency cap",
		Recommendation: fmt.Sprintf("Wait %d-%d days between requests to the same customer", benchCapMin, benchCapMax),
		CurrentValue:   fmt.Sprintf("%d days", rules.FrequencyCapDays),
		IsWithinRange:  rules.FrequencyCapDays >= benchCapMin && rules.FrequencyCapDays <= benchCapMax,
	}
	if !cap.IsWithinRange {
		cap.Suggestion = "Pick a cap between 30 and 90 days to stay welcome in the inbox."
	}
	benchmarks = append(benchmarks, cap)

	return benchmarks
}

func quietWindowNearTarget(qh models.QuietHours) bool {
	start, okStart := parseClock(qh.Start)
	end, okEnd := parseClock(qh.End)
	if !okStart || !okEnd {
		return false
	}
	return start >= benchQuietStartMin && start <= benchQuietStartMax &&
		end >= benchQuietEndMin && end <= benchQuietEndMax
}
