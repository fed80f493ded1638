package service

import (
	"context"
	"strings"

	"newsroom-be/internal/dto"
	"newsroom-be/internal/repository/specification"
	"newsroom-be/internal/repository/unitofwork"
)

type ISearchService interface {
	Search(ctx context.Context, query string, limit int) (*dto.SearchResponse, error)
	Autocomplete(ctx context.Context, prefix string, limit int) ([]dto.AutocompleteItem, error)
}

// searchService is a literal ILIKE search over published articles. No
// ranking beyond recency; the corpus is small enough that Postgres handles
// this without a dedicated index.
type searchService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSearchService(uowFactory unitofwork.RepositoryFactory) ISearchService {
	return &searchService{uowFactory: uowFactory}
}

func (s *searchService) Search(ctx context.Context, query string, limit int) (*dto.SearchResponse, error) {
	query = strings.TrimSpace(query)
	if limit < 1 || limit > 50 {
		limit = 20
	}

	res := &dto.SearchResponse{Items: []dto.ArticleListItem{}, Query: query}
	if query == "" {
		return res, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	articles, err := uow.ArticleRepository().FindAll(ctx,
		specification.Published{},
		specification.SearchQuery{Query: query},
		specification.OrderBy{Field: "published_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	items, err := toArticleListItems(ctx, uow, articles)
	if err != nil {
		return nil, err
	}

	res.Items = items
	res.Total = len(items)
	return res, nil
}

func (s *searchService) Autocomplete(ctx context.Context, prefix string, limit int) ([]dto.AutocompleteItem, error) {
	prefix = strings.TrimSpace(prefix)
	if limit < 1 || limit > 20 {
		limit = 10
	}
	if len([]rune(prefix)) < 2 {
		return []dto.AutocompleteItem{}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	articles, err := uow.ArticleRepository().FindAll(ctx,
		specification.Published{},
		specification.TitlePrefix{Prefix: prefix},
		specification.OrderBy{Field: "published_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.AutocompleteItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, dto.AutocompleteItem{Title: a.Title, Slug: a.Slug})
	}
	return items, nil
}
