package repository

import "context"

type AssetKind string

const (
	AssetKindImage AssetKind = "image"
	AssetKindVideo AssetKind = "video"
)

// StoredAsset is the handle the asset host returns for uploaded media.
type StoredAsset struct {
	URL      string  `json:"url"`
	Handle   string  `json:"handle"`
	Duration float64 `json:"duration,omitempty"`
}

// IAssetStore is the external media host collaborator. Deletes inside the
// video cascade are best-effort: the host has no compensating undelete.
type IAssetStore interface {
	Store(ctx context.Context, data []byte, filename string, kind AssetKind) (*StoredAsset, error)
	Delete(ctx context.Context, handle string, kind AssetKind) error
}
