package entity

import (
	"time"

	"github.com/google/uuid"
)

type Media struct {
	Id           uuid.UUID
	Filename     string
	URL          string
	Alt          string
	Legend       string
	Width        int
	Height       int
	ContentfulId string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
