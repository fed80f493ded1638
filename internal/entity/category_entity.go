package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category orders the site's sections; Position drives the navigation order.
type Category struct {
	Id           uuid.UUID
	Name         string
	Slug         string
	Description  string
	Position     int
	ContentfulId string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
