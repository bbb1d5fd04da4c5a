// internal/routes/reputation_routes.go
package routes

import (
	"github.com/go-chi/chi/v5"

	"localboost/internal/config"
	"localboost/internal/handlers"
	"localboost/internal/services"
)

func RegisterReputationRoutes(router chi.Router, cfg *config.Config) {
	client := services.NewReputationConsoleClient(cfg.ConsoleBaseURL, cfg.ConsoleUsername, cfg.ConsolePassword)
	reputationHandler := handlers.NewReputationHandler(client)

	router.Get("/reputation", reputationHandler.GetReputation)
}
