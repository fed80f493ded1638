package model

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Slug         string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description  string    `gorm:"type:text"`
	Position     int       `gorm:"not null;default:0"`
	ContentfulId string    `gorm:"type:varchar(64);index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Category) TableName() string {
	return "categories"
}
