package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ImportArticleRequest carries one Contentful article entry. Body is the raw
// Contentful rich text document, passed through untouched to the importer.
type ImportArticleRequest struct {
	ContentfulId string          `json:"contentful_id" validate:"required"`
	Title        string          `json:"title" validate:"required"`
	Slug         string          `json:"slug"`
	Date         string          `json:"date"`
	CategoryName string          `json:"category"`
	AuthorNames  []string        `json:"authors"`
	PhotoAssetId string          `json:"photo_asset_id"`
	Presentation json.RawMessage `json:"presentation"`
	Body         json.RawMessage `json:"body" validate:"required"`
}

type ImportArticleResponse struct {
	Id      uuid.UUID `json:"id"`
	Slug    string    `json:"slug"`
	Skipped bool      `json:"skipped"`
}

// ImportMediaRequest carries one Contentful asset. Assets are imported
// before entries so the body importer can resolve embedded images.
type ImportMediaRequest struct {
	ContentfulId string `json:"contentful_id" validate:"required"`
	Filename     string `json:"filename"`
	URL          string `json:"url" validate:"required"`
	Alt          string `json:"alt"`
	Legend       string `json:"legend"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}

type ImportMediaResponse struct {
	Id      uuid.UUID `json:"id"`
	Skipped bool      `json:"skipped"`
}
