// internal/routes/message_routes.go
package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"localboost/internal/config"
	"localboost/internal/handlers"
	"localboost/internal/repository"
	"localboost/internal/services"
)

func RegisterMessageRoutes(router chi.Router, db *sql.DB, cfg *config.Config) {
	sender := &services.SMTPSender{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Pass:     cfg.SMTPPass,
		From:     cfg.SMTPFrom,
		FromName: cfg.SMTPFromName,
		UseTLS:   cfg.SMTPTLS,
	}
	messageHandler := handlers.NewMessageHandler(repository.NewCampaignRepository(db), sender)

	router.Post("/campaigns/{id}/test-message", messageHandler.SendTestMessage)
}
