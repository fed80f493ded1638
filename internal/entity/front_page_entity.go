package entity

import (
	"time"

	"github.com/google/uuid"
)

// FrontPage is the curated "Une": the ordered article selection shown on the
// home page. It is a singleton, not a collection.
type FrontPage struct {
	ArticleIds []uuid.UUID
	UpdatedAt  time.Time
}
