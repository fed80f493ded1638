package service

import (
	"context"
	"encoding/json"
	"time"

	"newsroom-be/internal/dto"
	"newsroom-be/internal/entity"
	"newsroom-be/internal/pkg/logger"
	"newsroom-be/internal/repository/specification"
	"newsroom-be/internal/repository/unitofwork"
	"newsroom-be/pkg/events"
	pkgNats "newsroom-be/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"newsroom-be/pkg/utils"
)

type IArticleService interface {
	Create(ctx context.Context, req *dto.CreateArticleRequest) (*dto.CreateArticleResponse, error)
	Update(ctx context.Context, req *dto.UpdateArticleRequest) (*dto.UpdateArticleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ShowBySlug(ctx context.Context, slug string, includeBody bool) (*dto.ShowArticleResponse, error)
	List(ctx context.Context, categorySlug string, page, limit int) (*dto.ListArticlesResponse, error)
}

type articleService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pkgNats.Publisher
	log              logger.ILogger
}

func NewArticleService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) IArticleService {
	return &articleService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		log:              log,
	}
}

func (s *articleService) Create(ctx context.Context, req *dto.CreateArticleRequest) (*dto.CreateArticleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}

	existing, err := uow.ArticleRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fiber.NewError(fiber.StatusConflict, "an article with this slug already exists")
	}

	publishedAt := time.Now()
	if req.PublishedAt != nil {
		publishedAt = *req.PublishedAt
	}

	article := entity.Article{
		Id:           uuid.New(),
		Title:        req.Title,
		Slug:         slug,
		PublishedAt:  publishedAt,
		CategoryId:   req.CategoryId,
		AuthorIds:    req.AuthorIds,
		PhotoId:      req.PhotoId,
		Presentation: req.Presentation,
		Body:         req.Body,
		Published:    req.Published,
		CreatedAt:    time.Now(),
	}

	if err := uow.ArticleRepository().Create(ctx, &article); err != nil {
		return nil, err
	}

	if err := s.enqueueRender(ctx, article.Id); err != nil {
		return nil, err
	}
	s.publishArticleEvent(ctx, "ARTICLE_CREATED", &article)

	return &dto.CreateArticleResponse{
		Id:   article.Id,
		Slug: article.Slug,
	}, nil
}

func (s *articleService) Update(ctx context.Context, req *dto.UpdateArticleRequest) (*dto.UpdateArticleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	article, err := uow.ArticleRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, nil
	}

	slug := req.Slug
	if slug == "" {
		slug = article.Slug
	}
	if slug != article.Slug {
		existing, err := uow.ArticleRepository().FindOne(ctx, specification.BySlug{Slug: slug})
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.Id != article.Id {
			return nil, fiber.NewError(fiber.StatusConflict, "an article with this slug already exists")
		}
	}

	wasPublished := article.Published
	now := time.Now()

	article.Title = req.Title
	article.Slug = slug
	if req.PublishedAt != nil {
		article.PublishedAt = *req.PublishedAt
	}
	article.CategoryId = req.CategoryId
	article.AuthorIds = req.AuthorIds
	article.PhotoId = req.PhotoId
	article.Presentation = req.Presentation
	article.Body = req.Body
	article.Published = req.Published
	article.UpdatedAt = &now

	if err := uow.ArticleRepository().Update(ctx, article); err != nil {
		return nil, err
	}

	if err := s.enqueueRender(ctx, article.Id); err != nil {
		return nil, err
	}
	if !wasPublished && article.Published {
		s.publishArticleEvent(ctx, "ARTICLE_PUBLISHED", article)
	}

	return &dto.UpdateArticleResponse{Id: article.Id}, nil
}

func (s *articleService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	article, err := uow.ArticleRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if article == nil {
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ArticleRepository().Delete(ctx, id); err != nil {
		return err
	}

	// Drop the article from the front-page selection if it was featured.
	fp, err := uow.FrontPageRepository().Get(ctx)
	if err != nil {
		return err
	}
	kept := make([]uuid.UUID, 0, len(fp.ArticleIds))
	for _, aid := range fp.ArticleIds {
		if aid != id {
			kept = append(kept, aid)
		}
	}
	if len(kept) != len(fp.ArticleIds) {
		fp.ArticleIds = kept
		fp.UpdatedAt = time.Now()
		if err := uow.FrontPageRepository().Set(ctx, fp); err != nil {
			return err
		}
	}

	return uow.Commit()
}

func (s *articleService) ShowBySlug(ctx context.Context, slug string, includeBody bool) (*dto.ShowArticleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.BySlug{Slug: slug}}
	if !includeBody {
		specs = append(specs, specification.Published{})
	}

	article, err := uow.ArticleRepository().FindOne(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, nil
	}

	res := &dto.ShowArticleResponse{
		Id:           article.Id,
		Title:        article.Title,
		Slug:         article.Slug,
		PublishedAt:  article.PublishedAt,
		Presentation: article.Presentation,
		ContentHTML:  article.ContentHTML,
		Summary:      article.Summary,
		CreatedAt:    article.CreatedAt,
		UpdatedAt:    article.UpdatedAt,
	}
	if includeBody {
		res.Body = article.Body
	}

	if err := s.attachRelations(ctx, uow, article, res); err != nil {
		return nil, err
	}

	return res, nil
}

func (s *articleService) attachRelations(ctx context.Context, uow unitofwork.UnitOfWork, article *entity.Article, res *dto.ShowArticleResponse) error {
	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: article.CategoryId})
	if err != nil {
		return err
	}
	if category != nil {
		res.Category = &dto.CategoryItem{Id: category.Id, Name: category.Name, Slug: category.Slug}
	}

	if len(article.AuthorIds) > 0 {
		authors, err := uow.AuthorRepository().FindAll(ctx, specification.ByIDs{IDs: article.AuthorIds})
		if err != nil {
			return err
		}
		// Preserve the stored byline order; FindAll returns rows in table order.
		byId := make(map[uuid.UUID]*entity.Author, len(authors))
		for _, a := range authors {
			byId[a.Id] = a
		}
		for _, aid := range article.AuthorIds {
			if a, ok := byId[aid]; ok {
				res.Authors = append(res.Authors, dto.AuthorItem{Id: a.Id, Name: a.Name})
			}
		}
	}

	if article.PhotoId != nil {
		photo, err := uow.MediaRepository().FindOne(ctx, specification.ByID{ID: *article.PhotoId})
		if err != nil {
			return err
		}
		if photo != nil {
			res.Photo = &dto.MediaItem{Id: photo.Id, URL: photo.URL, Alt: photo.Alt, Legend: photo.Legend}
		}
	}

	return nil
}

func (s *articleService) List(ctx context.Context, categorySlug string, page, limit int) (*dto.ListArticlesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	specs := []specification.Specification{specification.Published{}}
	if categorySlug != "" {
		category, err := uow.CategoryRepository().FindOne(ctx, specification.BySlug{Slug: categorySlug})
		if err != nil {
			return nil, err
		}
		if category == nil {
			return &dto.ListArticlesResponse{Items: []dto.ArticleListItem{}, Page: page, Limit: limit}, nil
		}
		specs = append(specs, specification.ByCategoryID{CategoryID: category.Id})
	}

	total, err := uow.ArticleRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	listSpecs := append(specs,
		specification.OrderBy{Field: "published_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	articles, err := uow.ArticleRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	items, err := toArticleListItems(ctx, uow, articles)
	if err != nil {
		return nil, err
	}

	return &dto.ListArticlesResponse{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// toArticleListItems maps articles to list items with their category and
// photo resolved. Lookups are batched per page, not per row.
func toArticleListItems(ctx context.Context, uow unitofwork.UnitOfWork, articles []*entity.Article) ([]dto.ArticleListItem, error) {
	items := make([]dto.ArticleListItem, 0, len(articles))

	categoryIds := make([]uuid.UUID, 0)
	photoIds := make([]uuid.UUID, 0)
	seenCat := make(map[uuid.UUID]bool)
	seenPhoto := make(map[uuid.UUID]bool)
	for _, a := range articles {
		if !seenCat[a.CategoryId] {
			categoryIds = append(categoryIds, a.CategoryId)
			seenCat[a.CategoryId] = true
		}
		if a.PhotoId != nil && !seenPhoto[*a.PhotoId] {
			photoIds = append(photoIds, *a.PhotoId)
			seenPhoto[*a.PhotoId] = true
		}
	}

	categories := make(map[uuid.UUID]*entity.Category)
	if len(categoryIds) > 0 {
		found, err := uow.CategoryRepository().FindAll(ctx, specification.ByIDs{IDs: categoryIds})
		if err != nil {
			return nil, err
		}
		for _, c := range found {
			categories[c.Id] = c
		}
	}

	photos := make(map[uuid.UUID]*entity.Media)
	if len(photoIds) > 0 {
		found, err := uow.MediaRepository().FindAll(ctx, specification.ByIDs{IDs: photoIds})
		if err != nil {
			return nil, err
		}
		for _, m := range found {
			photos[m.Id] = m
		}
	}

	for _, a := range articles {
		item := dto.ArticleListItem{
			Id:          a.Id,
			Title:       a.Title,
			Slug:        a.Slug,
			PublishedAt: a.PublishedAt,
			Summary:     a.Summary,
		}
		if c, ok := categories[a.CategoryId]; ok {
			item.Category = &dto.CategoryItem{Id: c.Id, Name: c.Name, Slug: c.Slug}
		}
		if a.PhotoId != nil {
			if m, ok := photos[*a.PhotoId]; ok {
				item.Photo = &dto.MediaItem{Id: m.Id, URL: m.URL, Alt: m.Alt, Legend: m.Legend}
			}
		}
		items = append(items, item)
	}

	return items, nil
}

func (s *articleService) enqueueRender(ctx context.Context, articleId uuid.UUID) error {
	payload := dto.RenderArticleMessage{ArticleId: articleId}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.publisherService.Publish(ctx, payloadJson)
}

func (s *articleService) publishArticleEvent(ctx context.Context, eventType string, article *entity.Article) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"article_id": article.Id,
			"title":      article.Title,
			"slug":       article.Slug,
		},
		OccurredAt: time.Now(),
	}
	// The event bus is auxiliary, a publish failure must not fail the request.
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("article", "failed to publish article event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}
