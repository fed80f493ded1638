package dto

import (
	"time"

	"github.com/google/uuid"
)

type SetFrontPageRequest struct {
	ArticleIds []uuid.UUID `json:"article_ids" validate:"required,min=1"`
}

type FrontPageResponse struct {
	Articles  []ArticleListItem `json:"articles"`
	UpdatedAt time.Time         `json:"updated_at"`
}
