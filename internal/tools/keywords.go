// internal/tools/keywords.go
package tools

import (
	"strings"

	"localboost/internal/models"
)

var keywordModifiers = []struct {
	pattern string // {seed} and {loc} are substituted
	intent  string
	local   bool // only emitted when a locality is provided
}{
	{pattern: "{seed}", intent: "navigational"},
	{pattern: "{seed} near me", intent: "local"},
	{pattern: "best {seed}", intent: "commercial"},
	{pattern: "{seed} reviews", intent: "commercial"},
	{pattern: "{seed} prices", intent: "transactional"},
	{pattern: "affordable {seed}", intent: "transactional"},
	{pattern: "{seed} open now", intent: "local"},
	{pattern: "{seed} in {loc}", intent: "local", local: true},
	{pattern: "best {seed} {loc}", intent: "commercial", local: true},
	{pattern: "{loc} {seed}", intent: "local", local: true},
}

// ExpandKeywords expands a seed keyword against the modifier table, tagging
// each suggestion with a rough search intent. Duplicates (after whitespace
// normalisation) are dropped, first occurrence wins.
func ExpandKeywords(req models.KeywordRequest) []models.KeywordSuggestion {
	seed := normalizeKeyword(req.Seed)
	if seed == "" {
		return nil
	}
	loc := normalizeKeyword(req.Locality)

	seen := make(map[string]bool)
	out := make([]models.KeywordSuggestion, 0, len(keywordModifiers))
	for _, m := range keywordModifiers {
		if m.local && loc == "" {
			continue
		}
		kw := strings.ReplaceAll(m.pattern, "{seed}", seed)
		kw = strings.ReplaceAll(kw, "{loc}", loc)
		kw = normalizeKeyword(kw)
		if seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, models.KeywordSuggestion{Keyword: kw, Intent: m.intent})
	}
	return out
}

func normalizeKeyword(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
