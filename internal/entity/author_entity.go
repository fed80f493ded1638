package entity

import (
	"time"

	"github.com/google/uuid"
)

type Author struct {
	Id           uuid.UUID
	Name         string
	Slug         string
	Description  string
	PhotoId      *uuid.UUID
	ContentfulId string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
