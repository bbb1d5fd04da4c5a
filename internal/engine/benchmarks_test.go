package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"localboost/internal/models"
)

func TestRecommendForBusinessType(t *testing.T) {
	cases := []struct {
		input    string
		category string
	}{
		{"Neighborhood Pizza Joint", "restaurant/food"},
		{"ACME Plumbing & Heating", "home-services"},
		{"Shear Genius Hair Salon", "beauty/wellness"},
		{"Main St Auto Repair", "auto/trades"},
		{"Downtown Dental Clinic", "medical"},
		{"Corner Gift Shop", "retail"},
	}

	for _, tc := range cases {
		rec := RecommendForBusinessType(tc.input)
		require.NotNil(t, rec, "input %q", tc.input)
		require.Equal(t, tc.category, rec.Category, "input %q", tc.input)
		require.NotEmpty(t, rec.SuggestedTones)
		require.LessOrEqual(t, rec.SendDelayHours.Min, rec.SendDelayHours.Default)
		require.LessOrEqual(t, rec.SendDelayHours.Default, rec.SendDelayHours.Max)
	}
}

func TestRecommendForBusinessTypeNoMatch(t *testing.T) {
	require.Nil(t, RecommendForBusinessType("quantum flux consulting"))
	require.Nil(t, RecommendForBusinessType(""))
	require.Nil(t, RecommendForBusinessType("   "))
}

func TestRecommendForBusinessTypeCaseInsensitive(t *testing.T) {
	rec := RecommendForBusinessType("ROSA'S BAKERY")
	require.NotNil(t, rec)
	require.Equal(t, "restaurant/food", rec.Category)
}

func TestGuidanceBenchmarksAllWithinRange(t *testing.T) {
	rules := models.CampaignRules{
		FollowUpDelayDays: 3,
		FrequencyCapDays:  30,
		QuietHours:        models.QuietHours{Start: "19:00", End: "09:00"},
	}

	benchmarks := BuildGuidanceBenchmarks(rules)

	require.Len(t, benchmarks, 3)
	for _, b := range benchmarks {
		require.True(t, b.IsWithinRange, "benchmark %s", b.ID)
		require.Empty(t, b.Suggestion)
		require.NotEmpty(t, b.CurrentValue)
	}
}

func TestGuidanceBenchmarksOutOfRange(t *testing.T) {
	rules := models.CampaignRules{
		FollowUpDelayDays: 10,
		FrequencyCapDays:  15,
		QuietHours:        models.QuietHours{Start: "23:00", End: "04:00"},
	}

	benchmarks := BuildGuidanceBenchmarks(rules)

	require.Len(t, benchmarks, 3)
	for _, b := range benchmarks {
		require.False(t, b.IsWithinRange, "benchmark %s", b.ID)
		require.NotEmpty(t, b.Suggestion, "benchmark %s", b.ID)
	}
}
