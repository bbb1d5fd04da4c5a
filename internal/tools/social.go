// internal/tools/social.go
package tools

import (
	"strings"

	"localboost/internal/models"
)

const (
	twitterMaxLen = 280
)

var socialBodies = map[string]string{
	"friendly":     "Big news from {business}: {topic}! Come see us soon.",
	"professional": "{business} update: {topic}. We look forward to serving you.",
	"casual":       "{topic} at {business}, swing by!",
}

var socialHashtags = map[string][]string{
	"facebook":  {"#local", "#community"},
	"instagram": {"#local", "#smallbusiness", "#shoplocal"},
	"twitter":   {"#local"},
}

// DraftSocialPost fills a per-tone template and attaches per-platform
// hashtags. Twitter bodies get truncated to the platform limit, link
// included.
func DraftSocialPost(req models.SocialPostRequest) models.SocialPost {
	tone := strings.ToLower(strings.TrimSpace(req.Tone))
	body, ok := socialBodies[tone]
	if !ok {
		body = socialBodies["friendly"]
	}
	body = strings.ReplaceAll(body, "{business}", req.BusinessName)
	body = strings.ReplaceAll(body, "{topic}", req.Topic)
	if req.Link != "" {
		body = body + " " + req.Link
	}

	platform := strings.ToLower(req.Platform)
	if runes := []rune(body); platform == "twitter" && len(runes) > twitterMaxLen {
		body = string(runes[:twitterMaxLen-1]) + "…"
	}

	tags := append([]string(nil), socialHashtags[platform]...)

	return models.SocialPost{
		Platform: platform,
		Body:     body,
		Hashtags: tags,
	}
}
