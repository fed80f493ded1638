package mapper

import (
	"testing"
	"time"

	"newsroom-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestArticleMapperRoundTrip(t *testing.T) {
	m := NewArticleMapper()
	now := time.Now()
	photoId := uuid.New()
	authorA, authorB := uuid.New(), uuid.New()

	article := &entity.Article{
		Id:          uuid.New(),
		Title:       "Budget 2026",
		Slug:        "budget-2026",
		PublishedAt: now,
		CategoryId:  uuid.New(),
		AuthorIds:   []uuid.UUID{authorA, authorB},
		PhotoId:     &photoId,
		Body:        `{"root":{"children":[],"type":"root","version":1}}`,
		Published:   true,
		CreatedAt:   now,
	}

	got := m.ToEntity(m.ToModel(article))

	assert.Equal(t, article.Id, got.Id)
	assert.Equal(t, article.Slug, got.Slug)
	// Byline order is load-bearing; the jsonb column must preserve it.
	assert.Equal(t, []uuid.UUID{authorA, authorB}, got.AuthorIds)
	assert.Equal(t, &photoId, got.PhotoId)
	assert.False(t, got.IsDeleted)
}

func TestDecodeUUIDListDropsMalformedEntries(t *testing.T) {
	valid := uuid.New()
	raw := datatypes.JSON(`["` + valid.String() + `", "not-a-uuid"]`)

	assert.Equal(t, []uuid.UUID{valid}, decodeUUIDList(raw))
	assert.Nil(t, decodeUUIDList(nil))
	assert.Nil(t, decodeUUIDList(datatypes.JSON(`{"broken"`)))
}
