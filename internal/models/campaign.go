// internal/models/campaign.go
package models

import "time"

type TriggerType string

const (
	TriggerManual       TriggerType = "manual"
	TriggerAfterService TriggerType = "after_service"
	TriggerAfterPayment TriggerType = "after_payment"
)

// QuietHours is a daily window during which nothing may be scheduled.
// Bounds are "HH:mm"; start > end means the window spans midnight.
type QuietHours struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

type CampaignRules struct {
	TriggerType       TriggerType `json:"trigger_type" validate:"required,oneof=manual after_service after_payment"`
	SendDelayHours    int         `json:"send_delay_hours" validate:"min=0,max=168"`
	FollowUpEnabled   bool        `json:"follow_up_enabled"`
	FollowUpDelayDays int         `json:"follow_up_delay_days" validate:"omitempty,min=1,max=30"`
	FrequencyCapDays  int         `json:"frequency_cap_days" validate:"required,oneof=30 60 90"`
	QuietHours        QuietHours  `json:"quiet_hours"`
}

type Campaign struct {
	ID           string        `json:"id"`
	BusinessName string        `json:"business_name" validate:"required"`
	BusinessType string        `json:"business_type"`
	Platform     string        `json:"platform"`
	ReviewLink   string        `json:"review_link" validate:"required"`
	Language     string        `json:"language"`
	Tone         string        `json:"tone"`
	BrandVoice   string        `json:"brand_voice,omitempty"`
	Rules        CampaignRules `json:"rules"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type CreateCampaignRequest struct {
	BusinessName string        `json:"business_name" validate:"required"`
	BusinessType string        `json:"business_type"`
	Platform     string        `json:"platform" validate:"required"`
	ReviewLink   string        `json:"review_link" validate:"required,url"`
	Language     string        `json:"language"`
	Tone         string        `json:"tone"`
	BrandVoice   string        `json:"brand_voice"`
	Rules        CampaignRules `json:"rules"`
}

type UpdateCampaignRequest struct {
	BusinessName *string        `json:"business_name,omitempty" validate:"omitempty,min=1"`
	BusinessType *string        `json:"business_type,omitempty"`
	Platform     *string        `json:"platform,omitempty"`
	ReviewLink   *string        `json:"review_link,omitempty" validate:"omitempty,url"`
	Language     *string        `json:"language,omitempty"`
	Tone         *string        `json:"tone,omitempty"`
	BrandVoice   *string        `json:"brand_voice,omitempty"`
	Rules        *CampaignRules `json:"rules,omitempty"`
}
