package service

import (
	"context"
	"encoding/json"
	"time"

	"newsroom-be/internal/dto"
	"newsroom-be/internal/pkg/logger"
	"newsroom-be/internal/repository/specification"
	"newsroom-be/internal/repository/unitofwork"

	"github.com/redis/go-redis/v9"
)

const (
	frontPageCacheKey = "front_page:v1"
	frontPageCacheTTL = 5 * time.Minute
)

type IFrontPageService interface {
	Get(ctx context.Context) (*dto.FrontPageResponse, error)
	Set(ctx context.Context, req *dto.SetFrontPageRequest) (*dto.FrontPageResponse, error)
}

// frontPageService serves the curated "Une". Reads go through Redis; writing
// a new selection invalidates the cache so the home page updates immediately.
type frontPageService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *redis.Client
	log        logger.ILogger
}

func NewFrontPageService(
	uowFactory unitofwork.RepositoryFactory,
	cache *redis.Client,
	log logger.ILogger,
) IFrontPageService {
	return &frontPageService{
		uowFactory: uowFactory,
		cache:      cache,
		log:        log,
	}
}

func (s *frontPageService) Get(ctx context.Context) (*dto.FrontPageResponse, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, frontPageCacheKey).Bytes()
		if err == nil {
			var res dto.FrontPageResponse
			if err := json.Unmarshal(cached, &res); err == nil {
				return &res, nil
			}
		} else if err != redis.Nil {
			s.log.Warn("front_page", "cache read failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	res, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		payload, err := json.Marshal(res)
		if err == nil {
			if err := s.cache.Set(ctx, frontPageCacheKey, payload, frontPageCacheTTL).Err(); err != nil {
				s.log.Warn("front_page", "cache write failed", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}

	return res, nil
}

func (s *frontPageService) load(ctx context.Context) (*dto.FrontPageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	fp, err := uow.FrontPageRepository().Get(ctx)
	if err != nil {
		return nil, err
	}

	res := &dto.FrontPageResponse{
		Articles:  []dto.ArticleListItem{},
		UpdatedAt: fp.UpdatedAt,
	}
	if len(fp.ArticleIds) == 0 {
		return res, nil
	}

	articles, err := uow.ArticleRepository().FindAll(ctx,
		specification.ByIDs{IDs: fp.ArticleIds},
		specification.Published{},
	)
	if err != nil {
		return nil, err
	}

	items, err := toArticleListItems(ctx, uow, articles)
	if err != nil {
		return nil, err
	}

	// Keep the curated order, not the table order. Unpublished picks drop out.
	byId := make(map[string]dto.ArticleListItem, len(items))
	for _, it := range items {
		byId[it.Id.String()] = it
	}
	for _, id := range fp.ArticleIds {
		if it, ok := byId[id.String()]; ok {
			res.Articles = append(res.Articles, it)
		}
	}

	return res, nil
}

func (s *frontPageService) Set(ctx context.Context, req *dto.SetFrontPageRequest) (*dto.FrontPageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Only existing articles may be featured.
	found, err := uow.ArticleRepository().FindAll(ctx, specification.ByIDs{IDs: req.ArticleIds})
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(found))
	for _, a := range found {
		known[a.Id.String()] = true
	}
	for _, id := range req.ArticleIds {
		if !known[id.String()] {
			s.log.Warn("front_page", "selection references unknown article", map[string]interface{}{
				"article_id": id,
			})
		}
	}

	fp, err := uow.FrontPageRepository().Get(ctx)
	if err != nil {
		return nil, err
	}
	fp.ArticleIds = req.ArticleIds
	fp.UpdatedAt = time.Now()

	if err := uow.FrontPageRepository().Set(ctx, fp); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Del(ctx, frontPageCacheKey).Err(); err != nil {
			s.log.Warn("front_page", "cache invalidation failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return s.load(ctx)
}
