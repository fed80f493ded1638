package dto

import (
	"github.com/google/uuid"
)

type AuthorItem struct {
	Id          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description,omitempty"`
	PhotoId     *uuid.UUID `json:"photo_id,omitempty"`
}

type CreateAuthorRequest struct {
	Name        string     `json:"name" validate:"required"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	PhotoId     *uuid.UUID `json:"photo_id"`
}

type UpdateAuthorRequest struct {
	Id          uuid.UUID
	Name        string     `json:"name" validate:"required"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	PhotoId     *uuid.UUID `json:"photo_id"`
}
