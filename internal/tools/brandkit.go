// internal/tools/brandkit.go
// Package tools holds the dashboard's auxiliary generators. Everything here
// is a deterministic table lookup over the request fields; there is no
// external service behind any of it.
package tools

import (
	"fmt"
	"strings"

	"localboost/internal/models"
)

type brandProfile struct {
	palette     []string
	taglines    []string
	voiceTraits []string
}

var brandProfiles = []struct {
	keywords []string
	profile  brandProfile
}{
	{
		keywords: []string{"restaurant", "cafe", "coffee", "bakery", "food", "pizza", "bar", "catering"},
		profile: brandProfile{
			palette:     []string{"#C0392B", "#E67E22", "#F6E7D7", "#2C2C2C"},
			taglines:    []string{"Made fresh, every day", "Where %s feels like home", "Good food, good company"},
			voiceTraits: []string{"warm", "inviting", "down-to-earth"},
		},
	},
	{
		keywords: []string{"plumb", "hvac", "electric", "roof", "landscap", "clean", "pest", "handyman", "contractor"},
		profile: brandProfile{
			palette:     []string{"#1F618D", "#F39C12", "#ECF0F1", "#17202A"},
			taglines:    []string{"Done right the first time", "%s: on time, on budget", "Your home, in good hands"},
			voiceTraits: []string{"dependable", "straightforward", "professional"},
		},
	},
	{
		keywords: []string{"salon", "spa", "barber", "nail", "beauty", "massage", "wellness", "yoga", "fitness", "gym"},
		profile: brandProfile{
			palette:     []string{"#8E6C88", "#D7BDE2", "#FDF2E9", "#424949"},
			taglines:    []string{"Look good, feel better", "Your moment, at %s", "Self-care starts here"},
			voiceTraits: []string{"calming", "personal", "upbeat"},
		},
	},
	{
		keywords: []string{"auto", "mechanic", "tire", "repair", "towing", "detail"},
		profile: brandProfile{
			palette:     []string{"#212F3D", "#CB4335", "#D5D8DC", "#F4F6F7"},
			taglines:    []string{"Honest work, fair prices", "Keeping %s's customers on the road", "Fixed fast, fixed right"},
			voiceTraits: []string{"honest", "no-nonsense", "expert"},
		},
	},
	{
		keywords: []string{"dental", "dentist", "medical", "clinic", "chiro", "vet", "optom", "therapy"},
		profile: brandProfile{
			palette:     []string{"#117864", "#76D7C4", "#FBFCFC", "#1C2833"},
			taglines:    []string{"Care you can count on", "Feel better with %s", "Modern care, personal touch"},
			voiceTraits: []string{"reassuring", "clear", "caring"},
		},
	},
}

var defaultBrandProfile = brandProfile{
	palette:     []string{"#2E4053", "#F5B041", "#FDFEFE", "#273746"},
	taglines:    []string{"Proudly serving our community", "Discover %s", "Local, and loving it"},
	voiceTraits: []string{"friendly", "genuine", "local"},
}

// BuildBrandKit produces a starter palette, tagline ideas and voice traits
// for a business. Same input always yields the same kit.
func BuildBrandKit(req models.BrandKitRequest) models.BrandKit {
	profile := defaultBrandProfile
	lowered := strings.ToLower(req.BusinessType)
	if lowered != "" {
	outer:
		for _, bp := range brandProfiles {
			for _, kw := range bp.keywords {
				if strings.Contains(lowered, kw) {
					profile = bp.profile
					break outer
				}
			}
		}
	}

	taglines := make([]string, 0, len(profile.taglines))
	for _, t := range profile.taglines {
		if strings.Contains(t, "%s") {
			taglines = append(taglines, fmt.Sprintf(t, req.BusinessName))
		} else {
			taglines = append(taglines, t)
		}
	}

	traits := append([]string(nil), profile.voiceTraits...)
	if tone := strings.ToLower(strings.TrimSpace(req.Tone)); tone != "" && !containsString(traits, tone) {
		traits = append(traits, tone)
	}

	return models.BrandKit{
		BusinessName: req.BusinessName,
		Palette:      append([]string(nil), profile.palette...),
		Taglines:     taglines,
		VoiceTraits:  traits,
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
