package model

import (
	"time"

	"gorm.io/datatypes"
)

// FrontPage is a single-row global; Id is fixed to 1.
type FrontPage struct {
	Id         int            `gorm:"primaryKey"`
	ArticleIds datatypes.JSON `gorm:"type:jsonb"` // ordered uuid list
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
}

func (FrontPage) TableName() string {
	return "front_page"
}
