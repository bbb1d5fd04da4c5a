// internal/routes/asset_routes.go
package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"localboost/internal/config"
	"localboost/internal/handlers"
	"localboost/internal/repository"
)

func RegisterAssetRoutes(router chi.Router, db *sql.DB, s3Config *config.S3Config) {
	assetHandler := handlers.NewAssetHandler(repository.NewCampaignRepository(db), s3Config)

	router.Post("/campaigns/{id}/assets", assetHandler.UploadAssets)
}
