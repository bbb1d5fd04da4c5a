// internal/engine/templates.go
package engine

import (
	"strings"

	"localboost/internal/models"
)

// templateSet holds raw template text with {{business}} and {{link}}
// placeholders, keyed below by "language|tone".
type templateSet struct {
	smsShort     string
	smsStandard  string
	emailSubject string
	emailBody    string
	followUpSMS  string
}

var templateTable = map[string]templateSet{
	"en|friendly": {
		smsShort:     "Hi! Thanks for visiting {{business}}. Mind leaving us a quick review? {{link}} Reply STOP to opt out.",
		smsStandard:  "Hi! Thanks for choosing {{business}}. Your feedback means a lot to our small team. Would you share a quick review? {{link}} Reply STOP to opt out.",
		emailSubject: "How was your visit to {{business}}?",
		emailBody:    "Hi,\n\nThanks for choosing {{business}}! If you have a minute, we'd love your feedback. A quick review helps other locals find us.\n\nLeave a review here: {{link}}\n\nThanks so much,\nThe {{business}} team",
		followUpSMS:  "Hi again from {{business}}! Just a friendly nudge, a quick review would make our day: {{link}} Reply STOP to opt out.",
	},
	"en|professional": {
		smsShort:     "Thank you for visiting {{business}}. We would value your review: {{link}} Reply STOP to opt out.",
		smsStandard:  "Thank you for choosing {{business}}. We would greatly appreciate your feedback in a brief review: {{link}} Reply STOP to opt out.",
		emailSubject: "We value your feedback - {{business}}",
		emailBody:    "Hello,\n\nThank you for choosing {{business}}. We would appreciate a moment of your time to share a review of your experience.\n\nLeave a review: {{link}}\n\nKind regards,\n{{business}}",
		followUpSMS:  "A brief reminder from {{business}}: we would still value your review. {{link}} Reply STOP to opt out.",
	},
	"en|casual": {
		smsShort:     "Hey, it's {{business}}! Got 30 seconds for a review? {{link}} Reply STOP to opt out.",
		smsStandard:  "Hey! {{business}} here. If we did a good job, a quick review would be awesome: {{link}} Reply STOP to opt out.",
		emailSubject: "Quick favor from {{business}}?",
		emailBody:    "Hey!\n\n{{business}} here. If you liked what we did, a quick review would seriously help us out.\n\nHere's the link: {{link}}\n\nCheers!",
		followUpSMS:  "Hey, {{business}} again! Still time for that review? {{link}} Reply STOP to opt out.",
	},
	"es|friendly": {
		smsShort:     "¡Hola! Gracias por visitar {{business}}. ¿Nos dejas una reseña rápida? {{link}} Responde STOP para darte de baja.",
		smsStandard:  "¡Hola! Gracias por elegir {{business}}. Tu opinión significa mucho para nosotros. ¿Compartirías una reseña? {{link}} Responde STOP para darte de baja.",
		emailSubject: "¿Cómo fue tu visita a {{business}}?",
		emailBody:    "¡Hola!\n\nGracias por elegir {{business}}. Si tienes un minuto, nos encantaría tu opinión en una reseña.\n\nDeja tu reseña aquí: {{link}}\n\n¡Muchas gracias!\nEl equipo de {{business}}",
		followUpSMS:  "¡Hola de nuevo de {{business}}! Una reseña rápida nos ayudaría mucho: {{link}} Responde STOP para darte de baja.",
	},
	"es|professional": {
		smsShort:     "Gracias por visitar {{business}}. Valoraríamos su reseña: {{link}} Responda STOP para darse de baja.",
		smsStandard:  "Gracias por elegir {{business}}. Agradeceríamos mucho su opinión en una breve reseña: {{link}} Responda STOP para darse de baja.",
		emailSubject: "Valoramos su opinión - {{business}}",
		emailBody:    "Estimado cliente:\n\nGracias por elegir {{business}}. Le agradeceríamos que compartiera una reseña sobre su experiencia.\n\nDeje su reseña: {{link}}\n\nAtentamente,\n{{business}}",
		followUpSMS:  "Un breve recordatorio de {{business}}: aún valoraríamos su reseña. {{link}} Responda STOP para darse de baja.",
	},
}

const defaultTemplateKey = "en|friendly"

// BuildTemplates resolves the campaign's language and tone against the
// static table, falling back to English/friendly, and substitutes the
// business name and review link.
func BuildTemplates(c models.Campaign) models.MessageTemplates {
	lang := strings.ToLower(strings.TrimSpace(c.Language))
	if lang == "" {
		lang = "en"
	}
	tone := strings.ToLower(strings.TrimSpace(c.Tone))
	if tone == "" {
		tone = "friendly"
	}

	set, ok := templateTable[lang+"|"+tone]
	if !ok {
		if fallback, okLang := templateTable[lang+"|friendly"]; okLang {
			set = fallback
		} else {
			set = templateTable[defaultTemplateKey]
		}
	}

	fill := func(s string) string {
		s = strings.ReplaceAll(s, "{{business}}", c.BusinessName)
		return strings.ReplaceAll(s, "{{link}}", c.ReviewLink)
	}

	return models.MessageTemplates{
		SMSShort:     fill(set.smsShort),
		SMSStandard:  fill(set.smsStandard),
		EmailSubject: fill(set.emailSubject),
		EmailBody:    fill(set.emailBody),
		FollowUpSMS:  fill(set.followUpSMS),
	}
}
