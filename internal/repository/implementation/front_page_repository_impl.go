package implementation

import (
	"context"
	"errors"

	"newsroom-be/internal/entity"
	"newsroom-be/internal/mapper"
	"newsroom-be/internal/model"
	"newsroom-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FrontPageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FrontPageMapper
}

func NewFrontPageRepository(db *gorm.DB) contract.FrontPageRepository {
	return &FrontPageRepositoryImpl{
		db:     db,
		mapper: mapper.NewFrontPageMapper(),
	}
}

// Get returns the singleton row, or an empty selection when it was never set.
func (r *FrontPageRepositoryImpl) Get(ctx context.Context) (*entity.FrontPage, error) {
	var m model.FrontPage
	if err := r.db.WithContext(ctx).First(&m, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.FrontPage{}, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FrontPageRepositoryImpl) Set(ctx context.Context, fp *entity.FrontPage) error {
	m := r.mapper.ToModel(fp)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(m).Error
}
