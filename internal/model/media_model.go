package model

import (
	"time"

	"github.com/google/uuid"
)

type Media struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Filename     string    `gorm:"type:varchar(255);not null"`
	URL          string    `gorm:"type:varchar(512);not null"`
	Alt          string    `gorm:"type:varchar(255)"`
	Legend       string    `gorm:"type:varchar(512)"`
	Width        int       `gorm:""`
	Height       int       `gorm:""`
	ContentfulId string    `gorm:"type:varchar(64);uniqueIndex"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Media) TableName() string {
	return "media"
}
