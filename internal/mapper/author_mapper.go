package mapper

import (
	"time"

	"newsroom-be/internal/entity"
	"newsroom-be/internal/model"
)

type AuthorMapper struct{}

func NewAuthorMapper() *AuthorMapper {
	return &AuthorMapper{}
}

func (m *AuthorMapper) ToEntity(a *model.Author) *entity.Author {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Author{
		Id:           a.Id,
		Name:         a.Name,
		Slug:         a.Slug,
		Description:  a.Description,
		PhotoId:      a.PhotoId,
		ContentfulId: a.ContentfulId,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *AuthorMapper) ToModel(a *entity.Author) *model.Author {
	if a == nil {
		return nil
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.Author{
		Id:           a.Id,
		Name:         a.Name,
		Slug:         a.Slug,
		Description:  a.Description,
		PhotoId:      a.PhotoId,
		ContentfulId: a.ContentfulId,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *AuthorMapper) ToEntities(authors []*model.Author) []*entity.Author {
	entities := make([]*entity.Author, len(authors))
	for i, a := range authors {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
