package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BySlug struct {
	Slug string
}

func (s BySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("slug = ?", s.Slug)
}

type ByContentfulID struct {
	ContentfulID string
}

func (s ByContentfulID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("contentful_id = ?", s.ContentfulID)
}

type ByCategoryID struct {
	CategoryID uuid.UUID
}

func (s ByCategoryID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category_id = ?", s.CategoryID)
}

// Published keeps only articles visible to readers: published flag set and a
// publication date not in the future.
type Published struct{}

func (s Published) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("published = ?", true).Where("published_at <= NOW()")
}

// SearchQuery is a literal case-insensitive match on title or summary.
type SearchQuery struct {
	Query string
}

func (s SearchQuery) Apply(db *gorm.DB) *gorm.DB {
	like := "%" + s.Query + "%"
	return db.Where("title ILIKE ? OR summary ILIKE ?", like, like)
}

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// TitlePrefix matches titles starting with the given text, for autocomplete.
type TitlePrefix struct {
	Prefix string
}

func (s TitlePrefix) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title ILIKE ?", s.Prefix+"%")
}
