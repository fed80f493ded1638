package model

import (
	"time"

	"github.com/google/uuid"
)

type Author struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string     `gorm:"type:varchar(255);not null"`
	Slug         string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description  string     `gorm:"type:text"`
	PhotoId      *uuid.UUID `gorm:"type:uuid"`
	ContentfulId string     `gorm:"type:varchar(64);index"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
}

func (Author) TableName() string {
	return "authors"
}
