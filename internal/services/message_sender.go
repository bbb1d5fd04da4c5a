package services

import (
	"fmt"
	"strings"

	"localboost/internal/models"
)

// Preview is an operator-facing rendering of one campaign template slot.
// Campaign sends never go through this path.
type Preview struct {
	Variant string
	Subject string
	Body    string
}

// MessageSender delivers a template preview to the operator.
type MessageSender interface {
	SendPreview(to string, preview Preview) error
}

// BuildPreview picks the requested template slot and gives SMS variants a
// descriptive subject, since they have none of their own.
func BuildPreview(businessName string, t models.MessageTemplates, variant string) (Preview, error) {
	p := Preview{Variant: variant}

	switch variant {
	case "email":
		p.Subject = t.EmailSubject
		p.Body = t.EmailBody
	case "smsShort":
		p.Subject = fmt.Sprintf("SMS preview for %s", businessName)
		p.Body = t.SMSShort
	case "smsStandard":
		p.Subject = fmt.Sprintf("SMS preview for %s", businessName)
		p.Body = t.SMSStandard
	case "followUpSms":
		p.Subject = fmt.Sprintf("Follow-up SMS preview for %s", businessName)
		p.Body = t.FollowUpSMS
	default:
		return Preview{}, fmt.Errorf("unknown template variant %q", variant)
	}

	if strings.TrimSpace(p.Subject) == "" {
		p.Subject = "Template preview"
	}
	return p, nil
}
