// internal/models/asset.go
package models

import "time"

type AssetKind string

const (
	AssetKindLogo  AssetKind = "logo"
	AssetKindImage AssetKind = "image"
)

// BrandAsset is an uploaded brand file (logo, photos) served from object
// storage. Only the returned URL is used by the dashboard; nothing else
// references these rows.
type BrandAsset struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	Name       string    `json:"name"`
	Kind       AssetKind `json:"kind"`
	Size       int64     `json:"size"`
	URL        string    `json:"url"`
	FilePath   string    `json:"-"`
	UploadedAt time.Time `json:"uploaded_at"`
}
