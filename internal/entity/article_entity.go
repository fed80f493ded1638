package entity

import (
	"time"

	"github.com/google/uuid"
)

// Article is the editorial unit of the site. Body holds the raw stored
// content column: a rich-text document as JSON, or pre-rendered HTML for
// rows that predate the tree editor. ContentHTML and Summary are derived
// by the render pipeline and never edited by hand.
type Article struct {
	Id           uuid.UUID
	Title        string
	Slug         string
	PublishedAt  time.Time
	CategoryId   uuid.UUID
	AuthorIds    []uuid.UUID
	PhotoId      *uuid.UUID
	Presentation string
	Body         string
	ContentHTML  string
	Summary      string
	ContentfulId string
	Published    bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
	IsDeleted    bool
}
