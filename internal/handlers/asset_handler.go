// internal/handlers/asset_handler.go
package handlers

import (
	"database/sql"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"localboost/internal/config"
	"localboost/internal/interfaces"
	"localboost/internal/models"
)

type AssetHandler struct {
	campaigns     interfaces.CampaignRepository
	s3Client      *s3.Client
	bucket        string
	publicBaseURL string
}

func NewAssetHandler(campaigns interfaces.CampaignRepository, s3Config *config.S3Config) *AssetHandler {
	return &AssetHandler{
		campaigns:     campaigns,
		s3Client:      s3Config.Client,
		bucket:        s3Config.Bucket,
		publicBaseURL: s3Config.PublicBaseURL,
	}
}

// UploadAssets handles POST /api/v1/campaigns/{id}/assets
// Accepts one or more brand files and uploads each to S3.
// @Tags assets
// @Summary Upload brand assets
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Campaign ID"
// @Param files formData file true "Asset files"
// @Success 201 {array} models.BrandAsset
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id}/assets [post]
func (h *AssetHandler) UploadAssets(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")
	if campaignID == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "campaign id is required")
		return
	}

	if _, err := h.campaigns.GetByID(r.Context(), campaignID); err != nil {
		if err == sql.ErrNoRows {
			writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "campaign not found")
			return
		}
		log.Printf("Failed to validate campaign %s: %v", campaignID, err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to validate campaign")
		return
	}

	const maxMemory = 32 << 20 // 32MB max memory
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Failed to parse form")
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "No files uploaded")
		return
	}

	uploader := manager.NewUploader(h.s3Client)
	var uploaded []*models.BrandAsset

	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			log.Printf("Failed to open file %s: %v", fileHeader.Filename, err)
			continue
		}

		asset := &models.BrandAsset{
			ID:         uuid.New().String(),
			CampaignID: campaignID,
			Name:       fileHeader.Filename,
			Kind:       assetKind(fileHeader),
			Size:       fileHeader.Size,
			UploadedAt: time.Now().UTC(),
		}

		key := filepath.Join("assets", campaignID, asset.ID+filepath.Ext(fileHeader.Filename))

		_, err = uploader.Upload(r.Context(), &s3.PutObjectInput{
			Bucket: aws.String(h.bucket),
			Key:    aws.String(key),
			Body:   file,
		})
		file.Close()

		if err != nil {
			log.Printf("Failed to upload file %s to S3: %v", fileHeader.Filename, err)
			continue
		}

		asset.FilePath = key
		asset.URL = strings.TrimRight(h.publicBaseURL, "/") + "/" + key
		uploaded = append(uploaded, asset)
	}

	if len(uploaded) == 0 {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "upload_failed", "Failed to upload any files")
		return
	}

	writeJSON(w, http.StatusCreated, uploaded)
}

func assetKind(header *multipart.FileHeader) models.AssetKind {
	name := strings.ToLower(header.Filename)
	if strings.Contains(name, "logo") {
		return models.AssetKindLogo
	}
	return models.AssetKindImage
}
