package mapper

import (
	"encoding/json"
	"time"

	"newsroom-be/internal/entity"
	"newsroom-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ArticleMapper struct{}

func NewArticleMapper() *ArticleMapper {
	return &ArticleMapper{}
}

func (m *ArticleMapper) ToEntity(a *model.Article) *entity.Article {
	if a == nil {
		return nil
	}

	var deletedAt *time.Time
	if a.DeletedAt.Valid {
		t := a.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Article{
		Id:           a.Id,
		Title:        a.Title,
		Slug:         a.Slug,
		PublishedAt:  a.PublishedAt,
		CategoryId:   a.CategoryId,
		AuthorIds:    decodeUUIDList(a.AuthorIds),
		PhotoId:      a.PhotoId,
		Presentation: a.Presentation,
		Body:         a.Body,
		ContentHTML:  a.ContentHTML,
		Summary:      a.Summary,
		ContentfulId: a.ContentfulId,
		Published:    a.Published,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
		IsDeleted:    a.DeletedAt.Valid,
	}
}

func (m *ArticleMapper) ToModel(a *entity.Article) *model.Article {
	if a == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if a.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *a.DeletedAt, Valid: true}
	} else if a.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.Article{
		Id:           a.Id,
		Title:        a.Title,
		Slug:         a.Slug,
		PublishedAt:  a.PublishedAt,
		CategoryId:   a.CategoryId,
		AuthorIds:    encodeUUIDList(a.AuthorIds),
		PhotoId:      a.PhotoId,
		Presentation: a.Presentation,
		Body:         a.Body,
		ContentHTML:  a.ContentHTML,
		Summary:      a.Summary,
		ContentfulId: a.ContentfulId,
		Published:    a.Published,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
	}
}

func (m *ArticleMapper) ToEntities(articles []*model.Article) []*entity.Article {
	entities := make([]*entity.Article, len(articles))
	for i, a := range articles {
		entities[i] = m.ToEntity(a)
	}
	return entities
}

// decodeUUIDList reads an ordered uuid list from a jsonb column. Unknown or
// malformed entries are dropped rather than failing the whole row.
func decodeUUIDList(raw datatypes.JSON) []uuid.UUID {
	if len(raw) == 0 {
		return nil
	}
	var strs []string
	if err := json.Unmarshal(raw, &strs); err != nil {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(strs))
	for _, s := range strs {
		id, err := uuid.Parse(s)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func encodeUUIDList(ids []uuid.UUID) datatypes.JSON {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = id.String()
	}
	raw, _ := json.Marshal(strs)
	return raw
}
