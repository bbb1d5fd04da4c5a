// internal/models/tools.go
package models

// Request/response shapes for the auxiliary dashboard tools. These are
// template utilities with no shared core; see internal/tools.

type BrandKitRequest struct {
	BusinessName string `json:"business_name" validate:"required"`
	BusinessType string `json:"business_type"`
	Tone         string `json:"tone"`
}

type BrandKit struct {
	BusinessName string   `json:"business_name"`
	Palette      []string `json:"palette"`
	Taglines     []string `json:"taglines"`
	VoiceTraits  []string `json:"voice_traits"`
}

type KeywordRequest struct {
	Seed     string `json:"seed" validate:"required"`
	Locality string `json:"locality"`
}

type KeywordSuggestion struct {
	Keyword string `json:"keyword"`
	Intent  string `json:"intent"`
}

type SocialPostRequest struct {
	BusinessName string `json:"business_name" validate:"required"`
	Platform     string `json:"platform" validate:"required,oneof=facebook instagram twitter"`
	Tone         string `json:"tone"`
	Topic        string `json:"topic" validate:"required"`
	Link         string `json:"link" validate:"omitempty,url"`
}

type SocialPost struct {
	Platform string   `json:"platform"`
	Body     string   `json:"body"`
	Hashtags []string `json:"hashtags"`
}
