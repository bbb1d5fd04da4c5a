// internal/routes/tools_routes.go
package routes

import (
	"github.com/go-chi/chi/v5"

	"localboost/internal/handlers"
)

func RegisterToolsRoutes(router chi.Router) {
	toolsHandler := handlers.NewToolsHandler()

	router.Route("/tools", func(r chi.Router) {
		r.Post("/brand-kit", toolsHandler.GenerateBrandKit)
		r.Post("/keywords", toolsHandler.ExpandKeywords)
		r.Post("/social-post", toolsHandler.DraftSocialPost)
	})
}
