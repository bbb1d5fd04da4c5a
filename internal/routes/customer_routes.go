// internal/routes/customer_routes.go
package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"localboost/internal/handlers"
	"localboost/internal/repository"
)

func RegisterCustomerRoutes(router chi.Router, db *sql.DB) {
	customerRepo := repository.NewCustomerRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	customerHandler := handlers.NewCustomerHandler(customerRepo, campaignRepo)

	// Campaign-scoped collection routes
	router.Route("/campaigns/{id}/customers", func(r chi.Router) {
		r.Get("/", customerHandler.ListCustomers)
		r.Post("/", customerHandler.CreateCustomer)
		r.Post("/import", customerHandler.ImportCustomers)
	})

	router.Route("/customers/{id}", func(r chi.Router) {
		r.Get("/", customerHandler.GetCustomer)
		r.Put("/", customerHandler.UpdateCustomer)
		r.Delete("/", customerHandler.DeleteCustomer)
	})
}
