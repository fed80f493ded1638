package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Article struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string         `gorm:"type:varchar(255);not null"`
	Slug         string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	PublishedAt  time.Time      `gorm:"index"`
	CategoryId   uuid.UUID      `gorm:"type:uuid;index"`
	AuthorIds    datatypes.JSON `gorm:"type:jsonb"` // ordered uuid list
	PhotoId      *uuid.UUID     `gorm:"type:uuid"`
	Presentation string         `gorm:"type:text"`
	Body         string         `gorm:"type:text"`
	ContentHTML  string         `gorm:"type:text"`
	Summary      string         `gorm:"type:varchar(255)"`
	ContentfulId string         `gorm:"type:varchar(64);index"`
	Published    bool           `gorm:"not null;default:false;index"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Article) TableName() string {
	return "articles"
}
