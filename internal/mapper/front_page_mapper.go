package mapper

import (
	"newsroom-be/internal/entity"
	"newsroom-be/internal/model"
)

type FrontPageMapper struct{}

func NewFrontPageMapper() *FrontPageMapper {
	return &FrontPageMapper{}
}

func (m *FrontPageMapper) ToEntity(fp *model.FrontPage) *entity.FrontPage {
	if fp == nil {
		return nil
	}
	return &entity.FrontPage{
		ArticleIds: decodeUUIDList(fp.ArticleIds),
		UpdatedAt:  fp.UpdatedAt,
	}
}

func (m *FrontPageMapper) ToModel(fp *entity.FrontPage) *model.FrontPage {
	if fp == nil {
		return nil
	}
	return &model.FrontPage{
		Id:         1,
		ArticleIds: encodeUUIDList(fp.ArticleIds),
		UpdatedAt:  fp.UpdatedAt,
	}
}
