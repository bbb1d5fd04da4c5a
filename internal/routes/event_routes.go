// internal/routes/event_routes.go
package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"localboost/internal/handlers"
	"localboost/internal/repository"
)

func RegisterEventRoutes(router chi.Router, db *sql.DB) {
	eventRepo := repository.NewEventRepository(db)
	eventHandler := handlers.NewEventHandler(eventRepo)

	router.Post("/events", eventHandler.AppendEvent)
	router.Get("/campaigns/{id}/events", eventHandler.ListCampaignEvents)
	router.Get("/customers/{id}/events", eventHandler.ListCustomerEvents)
}
