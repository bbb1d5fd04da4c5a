// internal/models/evaluation.go
package models

// MessageTemplates holds the four message slots a campaign can send.
type MessageTemplates struct {
	SMSShort     string `json:"sms_short"`
	SMSStandard  string `json:"sms_standard"`
	EmailSubject string `json:"email_subject"`
	EmailBody    string `json:"email_body"`
	FollowUpSMS  string `json:"follow_up_sms"`
}

type FunnelMetrics struct {
	Loaded   int `json:"loaded"`
	Ready    int `json:"ready"`
	Queued   int `json:"queued"`
	Sent     int `json:"sent"`
	Clicked  int `json:"clicked"`
	Reviewed int `json:"reviewed"`
	OptedOut int `json:"opted_out"`
}

type CheckSeverity string

const (
	SeverityInfo     CheckSeverity = "info"
	SeverityWarning  CheckSeverity = "warning"
	SeverityError    CheckSeverity = "error"
	SeverityCritical CheckSeverity = "critical"
)

type QualityCheck struct {
	ID           string        `json:"id"`
	Severity     CheckSeverity `json:"severity"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	SuggestedFix string        `json:"suggested_fix,omitempty"`
}

type HealthStatus string

const (
	HealthGood           HealthStatus = "Good"
	HealthNeedsAttention HealthStatus = "Needs Attention"
	HealthAtRisk         HealthStatus = "At Risk"
)

type CampaignHealth struct {
	Status  HealthStatus `json:"status"`
	Score   int          `json:"score"`
	Reasons []string     `json:"reasons"`
}

type TemplateLabel string

const (
	LabelGood          TemplateLabel = "Good"
	LabelTooLong       TemplateLabel = "Too Long"
	LabelMissingOptOut TemplateLabel = "Missing Opt-out"
	LabelLinkIssue     TemplateLabel = "Link Issue"
	LabelNeedsReview   TemplateLabel = "Needs Review"
)

type TemplateQuality struct {
	TemplateKey string        `json:"template_key"`
	Label       TemplateLabel `json:"label"`
	Severity    CheckSeverity `json:"severity"`
	Details     []string      `json:"details"`
	Suggestion  string        `json:"suggestion,omitempty"`
}

// IntRange is a recommended bounds pair with a midpoint default.
type IntRange struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

type BusinessTypeRecommendation struct {
	Category          string   `json:"category"`
	SendDelayHours    IntRange `json:"send_delay_hours"`
	FollowUpDelayDays IntRange `json:"follow_up_delay_days"`
	SuggestedTones    []string `json:"suggested_tones"`
}

type GuidanceBenchmark struct {
	ID             string `json:"id"`
	Category       string `json:"category"`
	Recommendation string `json:"recommendation"`
	CurrentValue   string `json:"current_value"`
	IsWithinRange  bool   `json:"is_within_range"`
	Suggestion     string `json:"suggestion,omitempty"`
}

// TimelineEntry is one calendar day of pending sends.
type TimelineEntry struct {
	Date  string `json:"date"`
	SMS   int    `json:"sms"`
	Email int    `json:"email"`
	Total int    `json:"total"`
}

// EvaluationInput is everything the engine reads. Immutable per call.
type EvaluationInput struct {
	Campaign  Campaign   `json:"campaign"`
	Customers []Customer `json:"customers"`
	Events    []Event    `json:"events"`
}

// EvaluationResult is the full engine output for one campaign.
type EvaluationResult struct {
	Templates                  MessageTemplates            `json:"templates"`
	SendQueue                  []SendQueueItem             `json:"send_queue"`
	Metrics                    FunnelMetrics               `json:"metrics"`
	QualityChecks              []QualityCheck              `json:"quality_checks"`
	NextActions                []string                    `json:"next_actions"`
	ValidationErrors           []string                    `json:"validation_errors"`
	CampaignHealth             CampaignHealth              `json:"campaign_health"`
	SendTimeline               []TimelineEntry             `json:"send_timeline"`
	TemplateQuality            []TemplateQuality           `json:"template_quality"`
	BusinessTypeRecommendation *BusinessTypeRecommendation `json:"business_type_recommendation,omitempty"`
	GuidanceBenchmarks         []GuidanceBenchmark         `json:"guidance_benchmarks"`
}
