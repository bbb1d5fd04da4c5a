// internal/routes/campaign_routes.go
package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"localboost/internal/handlers"
	"localboost/internal/repository"
)

func RegisterCampaignRoutes(router chi.Router, db *sql.DB) {
	campaignRepo := repository.NewCampaignRepository(db)
	campaignHandler := handlers.NewCampaignHandler(campaignRepo)

	router.Route("/campaigns", func(r chi.Router) {
		r.Get("/", campaignHandler.ListCampaigns)
		r.Post("/", campaignHandler.CreateCampaign)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", campaignHandler.GetCampaign)
			r.Put("/", campaignHandler.UpdateCampaign)
			r.Delete("/", campaignHandler.DeleteCampaign)
		})
	})
}
