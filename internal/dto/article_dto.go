package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateArticleRequest struct {
	Title        string      `json:"title" validate:"required"`
	Slug         string      `json:"slug"`
	PublishedAt  *time.Time  `json:"published_at"`
	CategoryId   uuid.UUID   `json:"category_id" validate:"required"`
	AuthorIds    []uuid.UUID `json:"author_ids"`
	PhotoId      *uuid.UUID  `json:"photo_id"`
	Presentation string      `json:"presentation"`
	Body         string      `json:"body" validate:"required"`
	Published    bool        `json:"published"`
}

type CreateArticleResponse struct {
	Id   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
}

type UpdateArticleRequest struct {
	Id           uuid.UUID
	Title        string      `json:"title" validate:"required"`
	Slug         string      `json:"slug"`
	PublishedAt  *time.Time  `json:"published_at"`
	CategoryId   uuid.UUID   `json:"category_id" validate:"required"`
	AuthorIds    []uuid.UUID `json:"author_ids"`
	PhotoId      *uuid.UUID  `json:"photo_id"`
	Presentation string      `json:"presentation"`
	Body         string      `json:"body" validate:"required"`
	Published    bool        `json:"published"`
}

type UpdateArticleResponse struct {
	Id uuid.UUID `json:"id"`
}

// ShowArticleResponse is the public article page payload. ContentHTML is the
// rendered body; Body (the raw document) is only included for editors.
type ShowArticleResponse struct {
	Id           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	Slug         string        `json:"slug"`
	PublishedAt  time.Time     `json:"published_at"`
	Category     *CategoryItem `json:"category,omitempty"`
	Authors      []AuthorItem  `json:"authors,omitempty"`
	Photo        *MediaItem    `json:"photo,omitempty"`
	Presentation string        `json:"presentation,omitempty"`
	ContentHTML  string        `json:"content_html"`
	Summary      string        `json:"summary"`
	Body         string        `json:"body,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    *time.Time    `json:"updated_at"`
}

type ArticleListItem struct {
	Id          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	PublishedAt time.Time     `json:"published_at"`
	Category    *CategoryItem `json:"category,omitempty"`
	Photo       *MediaItem    `json:"photo,omitempty"`
	Summary     string        `json:"summary"`
}

type ListArticlesResponse struct {
	Items []ArticleListItem `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// RenderArticleMessage is the render-pipeline job payload.
type RenderArticleMessage struct {
	ArticleId uuid.UUID `json:"article_id"`
}
