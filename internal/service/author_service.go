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

type IAuthorService interface {
	Create(ctx context.Context, req *dto.CreateAuthorRequest) (*dto.AuthorItem, error)
	Update(ctx context.Context, req *dto.UpdateAuthorRequest) (*dto.AuthorItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]dto.AuthorItem, error)
	ShowBySlug(ctx context.Context, slug string) (*dto.AuthorItem, error)
}

type authorService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAuthorService(uowFactory unitofwork.RepositoryFactory) IAuthorService {
	return &authorService{uowFactory: uowFactory}
}

func toAuthorItem(a *entity.Author) *dto.AuthorItem {
	return &dto.AuthorItem{
		Id:          a.Id,
		Name:        a.Name,
		Slug:        a.Slug,
		Description: a.Description,
		PhotoId:     a.PhotoId,
	}
}

func (s *authorService) Create(ctx context.Context, req *dto.CreateAuthorRequest) (*dto.AuthorItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	author := entity.Author{
		Id:          uuid.New(),
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		PhotoId:     req.PhotoId,
		CreatedAt:   time.Now(),
	}

	if err := uow.AuthorRepository().Create(ctx, &author); err != nil {
		return nil, err
	}
	return toAuthorItem(&author), nil
}

func (s *authorService) Update(ctx context.Context, req *dto.UpdateAuthorRequest) (*dto.AuthorItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	author, err := uow.AuthorRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, nil
	}

	now := time.Now()
	author.Name = req.Name
	if req.Slug != "" {
		author.Slug = req.Slug
	}
	author.Description = req.Description
	author.PhotoId = req.PhotoId
	author.UpdatedAt = &now

	if err := uow.AuthorRepository().Update(ctx, author); err != nil {
		return nil, err
	}
	return toAuthorItem(author), nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.AuthorRepository().Delete(ctx, id)
}

func (s *authorService) List(ctx context.Context) ([]dto.AuthorItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	authors, err := uow.AuthorRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}

	items := make([]dto.AuthorItem, 0, len(authors))
	for _, a := range authors {
		items = append(items, *toAuthorItem(a))
	}
	return items, nil
}

func (s *authorService) ShowBySlug(ctx context.Context, slug string) (*dto.AuthorItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	author, err := uow.AuthorRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, nil
	}
	return toAuthorItem(author), nil
}
