package implementation

import (
	"context"
	"errors"

	"newsroom-be/internal/entity"
	"newsroom-be/internal/mapper"
	"newsroom-be/internal/model"
	"newsroom-be/internal/repository/contract"
	"newsroom-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthorRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AuthorMapper
}

func NewAuthorRepository(db *gorm.DB) contract.AuthorRepository {
	return &AuthorRepositoryImpl{
		db:     db,
		mapper: mapper.NewAuthorMapper(),
	}
}

func (r *AuthorRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AuthorRepositoryImpl) Create(ctx context.Context, author *entity.Author) error {
	m := r.mapper.ToModel(author)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*author = *r.mapper.ToEntity(m)
	return nil
}

func (r *AuthorRepositoryImpl) Update(ctx context.Context, author *entity.Author) error {
	m := r.mapper.ToModel(author)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*author = *r.mapper.ToEntity(m)
	return nil
}

func (r *AuthorRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Author{}, id).Error
}

func (r *AuthorRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Author, error) {
	var m model.Author
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AuthorRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Author, error) {
	var models []*model.Author
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
