package dto

import (
	"github.com/google/uuid"
)

type MediaItem struct {
	Id     uuid.UUID `json:"id"`
	URL    string    `json:"url"`
	Alt    string    `json:"alt,omitempty"`
	Legend string    `json:"legend,omitempty"`
	Width  int       `json:"width,omitempty"`
	Height int       `json:"height,omitempty"`
}
