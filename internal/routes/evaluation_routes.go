// internal/routes/evaluation_routes.go
package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"localboost/internal/handlers"
	"localboost/internal/repository"
)

func RegisterEvaluationRoutes(router chi.Router, db *sql.DB) {
	evaluationHandler := handlers.NewEvaluationHandler(
		repository.NewCampaignRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewEventRepository(db),
		repository.NewQueueRepository(db),
	)

	router.Post("/campaigns/{id}/evaluate", evaluationHandler.EvaluateCampaign)
	router.Get("/campaigns/{id}/funnel", evaluationHandler.GetFunnel)
	router.Get("/campaigns/{id}/queue", evaluationHandler.ListQueue)
	router.Post("/evaluations", evaluationHandler.EvaluateStateless)
	router.Patch("/queue/{id}", evaluationHandler.UpdateQueueItem)
}
