package service

import (
	"context"
	"time"

	"newsroom-be/internal/dto"
	"newsroom-be/internal/entity"
	"newsroom-be/internal/repository/specification"
	"newsroom-be/internal/repository/unitofwork"
	"newsroom-be/pkg/utils"

	"github.com/google/uuid"
)

type ICategoryService interface {
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryItem, error)
	Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.CategoryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]dto.CategoryItem, error)
}

type categoryService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCategoryService(uowFactory unitofwork.RepositoryFactory) ICategoryService {
	return &categoryService{uowFactory: uowFactory}
}

func toCategoryItem(c *entity.Category) *dto.CategoryItem {
	return &dto.CategoryItem{
		Id:          c.Id,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Position:    c.Position,
	}
}

func (s *categoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	category := entity.Category{
		Id:          uuid.New(),
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Position:    req.Position,
		CreatedAt:   time.Now(),
	}

	if err := uow.CategoryRepository().Create(ctx, &category); err != nil {
		return nil, err
	}
	return toCategoryItem(&category), nil
}

func (s *categoryService) Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.CategoryItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}

	now := time.Now()
	category.Name = req.Name
	if req.Slug != "" {
		category.Slug = req.Slug
	}
	category.Description = req.Description
	category.Position = req.Position
	category.UpdatedAt = &now

	if err := uow.CategoryRepository().Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryItem(category), nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CategoryRepository().Delete(ctx, id)
}

// List returns the navigation order: ascending Position.
func (s *categoryService) List(ctx context.Context) ([]dto.CategoryItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	categories, err := uow.CategoryRepository().FindAll(ctx, specification.OrderBy{Field: "position"})
	if err != nil {
		return nil, err
	}

	items := make([]dto.CategoryItem, 0, len(categories))
	for _, c := range categories {
		items = append(items, *toCategoryItem(c))
	}
	return items, nil
}
