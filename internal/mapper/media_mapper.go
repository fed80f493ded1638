package mapper

import (
	"time"

	"newsroom-be/internal/entity"
	"newsroom-be/internal/model"
)

type MediaMapper struct{}

func NewMediaMapper() *MediaMapper {
	return &MediaMapper{}
}

func (m *MediaMapper) ToEntity(md *model.Media) *entity.Media {
	if md == nil {
		return nil
	}

	var updatedAt *time.Time
	if !md.UpdatedAt.IsZero() {
		t := md.UpdatedAt
		updatedAt = &t
	}

	return &entity.Media{
		Id:           md.Id,
		Filename:     md.Filename,
		URL:          md.URL,
		Alt:          md.Alt,
		Legend:       md.Legend,
		Width:        md.Width,
		Height:       md.Height,
		ContentfulId: md.ContentfulId,
		CreatedAt:    md.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *MediaMapper) ToModel(md *entity.Media) *model.Media {
	if md == nil {
		return nil
	}

	var updatedAt time.Time
	if md.UpdatedAt != nil {
		updatedAt = *md.UpdatedAt
	}

	return &model.Media{
		Id:           md.Id,
		Filename:     md.Filename,
		URL:          md.URL,
		Alt:          md.Alt,
		Legend:       md.Legend,
		Width:        md.Width,
		Height:       md.Height,
		ContentfulId: md.ContentfulId,
		CreatedAt:    md.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *MediaMapper) ToEntities(media []*model.Media) []*entity.Media {
	entities := make([]*entity.Media, len(media))
	for i, md := range media {
		entities[i] = m.ToEntity(md)
	}
	return entities
}
