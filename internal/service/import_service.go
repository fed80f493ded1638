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
	"newsroom-be/pkg/richtext"
	"newsroom-be/pkg/richtext/contentful"
	"newsroom-be/pkg/utils"

	gocache "github.com/patrickmn/go-cache"
	"github.com/google/uuid"
)

type IImportService interface {
	ImportMedia(ctx context.Context, req *dto.ImportMediaRequest) (*dto.ImportMediaResponse, error)
	ImportArticle(ctx context.Context, req *dto.ImportArticleRequest) (*dto.ImportArticleResponse, error)
}

// importService migrates a Contentful export into the local schema. Assets
// must be imported before entries: the body importer resolves embedded
// images against the media table.
type importService struct {
	uowFactory unitofwork.RepositoryFactory
	importer   *contentful.Importer
	assetCache *gocache.Cache
	log        logger.ILogger
}

func NewImportService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IImportService {
	s := &importService{
		uowFactory: uowFactory,
		assetCache: gocache.New(30*time.Minute, 10*time.Minute),
		log:        log,
	}
	s.importer = contentful.NewImporter(
		contentful.WithAssetResolver(s.resolveAsset),
		contentful.WithLogger(log.Zap()),
		contentful.WithConcurrency(8),
	)
	return s
}

// resolveAsset maps a Contentful asset id to the local media row id. An
// empty return with nil error means the asset is unknown; the importer
// falls back to a placeholder paragraph.
func (s *importService) resolveAsset(ctx context.Context, assetID string) (string, error) {
	if cached, ok := s.assetCache.Get(assetID); ok {
		return cached.(string), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	media, err := uow.MediaRepository().FindOne(ctx, specification.ByContentfulID{ContentfulID: assetID})
	if err != nil {
		return "", err
	}
	if media == nil {
		// Unknown assets are cached too; exports reference some assets dozens
		// of times.
		s.assetCache.Set(assetID, "", gocache.DefaultExpiration)
		return "", nil
	}

	id := media.Id.String()
	s.assetCache.Set(assetID, id, gocache.DefaultExpiration)
	return id, nil
}

func (s *importService) ImportMedia(ctx context.Context, req *dto.ImportMediaRequest) (*dto.ImportMediaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.MediaRepository().FindOne(ctx, specification.ByContentfulID{ContentfulID: req.ContentfulId})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.ImportMediaResponse{Id: existing.Id, Skipped: true}, nil
	}

	media := entity.Media{
		Id:           uuid.New(),
		Filename:     req.Filename,
		URL:          req.URL,
		Alt:          req.Alt,
		Legend:       req.Legend,
		Width:        req.Width,
		Height:       req.Height,
		ContentfulId: req.ContentfulId,
		CreatedAt:    time.Now(),
	}

	if err := uow.MediaRepository().Create(ctx, &media); err != nil {
		return nil, err
	}

	s.assetCache.Set(req.ContentfulId, media.Id.String(), gocache.DefaultExpiration)
	return &dto.ImportMediaResponse{Id: media.Id}, nil
}

func (s *importService) ImportArticle(ctx context.Context, req *dto.ImportArticleRequest) (*dto.ImportArticleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ArticleRepository().FindOne(ctx, specification.ByContentfulID{ContentfulID: req.ContentfulId})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.ImportArticleResponse{Id: existing.Id, Slug: existing.Slug, Skipped: true}, nil
	}

	doc, err := s.importer.ImportJSON(ctx, req.Body)
	if err != nil {
		return nil, err
	}
	doc, patched := richtext.FixMalformedLinks(doc)
	if patched {
		s.log.Info("import", "repaired malformed source links", map[string]interface{}{
			"contentful_id": req.ContentfulId,
		})
	}
	bodyJson, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	presentation := ""
	if len(req.Presentation) > 0 {
		presDoc, err := s.importer.ImportJSON(ctx, req.Presentation)
		if err != nil {
			return nil, err
		}
		presentation = richtext.ToPlainText(richtext.TreeContent(presDoc))
	}

	categoryId, err := s.resolveCategory(ctx, uow, req.CategoryName)
	if err != nil {
		return nil, err
	}
	authorIds, err := s.resolveAuthors(ctx, uow, req.AuthorNames)
	if err != nil {
		return nil, err
	}

	var photoId *uuid.UUID
	if req.PhotoAssetId != "" {
		mediaId, err := s.resolveAsset(ctx, req.PhotoAssetId)
		if err != nil {
			return nil, err
		}
		if mediaId != "" {
			parsed, err := uuid.Parse(mediaId)
			if err == nil {
				photoId = &parsed
			}
		} else {
			s.log.Warn("import", "article photo asset not found", map[string]interface{}{
				"contentful_id": req.ContentfulId,
				"asset_id":      req.PhotoAssetId,
			})
		}
	}

	publishedAt := time.Now()
	if req.Date != "" {
		if parsed, err := time.Parse(time.RFC3339, req.Date); err == nil {
			publishedAt = parsed
		} else if parsed, err := time.Parse("2006-01-02", req.Date); err == nil {
			publishedAt = parsed
		}
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}

	article := entity.Article{
		Id:           uuid.New(),
		Title:        req.Title,
		Slug:         slug,
		PublishedAt:  publishedAt,
		CategoryId:   categoryId,
		AuthorIds:    authorIds,
		PhotoId:      photoId,
		Presentation: presentation,
		Body:         string(bodyJson),
		ContentfulId: req.ContentfulId,
		Published:    true,
		CreatedAt:    time.Now(),
	}

	// The render pipeline is not running during a migration; derive the
	// rendered columns inline so imported articles are immediately servable.
	content := richtext.TreeContent(doc)
	article.ContentHTML = richtext.RenderHTML(content)
	article.Summary = richtext.ToPlainText(content)

	if err := uow.ArticleRepository().Create(ctx, &article); err != nil {
		return nil, err
	}

	return &dto.ImportArticleResponse{Id: article.Id, Slug: article.Slug}, nil
}

func (s *importService) resolveCategory(ctx context.Context, uow unitofwork.UnitOfWork, name string) (uuid.UUID, error) {
	if name == "" {
		name = "Actualités"
	}
	slug := utils.Slugify(name)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return uuid.Nil, err
	}
	if category != nil {
		return category.Id, nil
	}

	created := entity.Category{
		Id:        uuid.New(),
		Name:      name,
		Slug:      slug,
		CreatedAt: time.Now(),
	}
	if err := uow.CategoryRepository().Create(ctx, &created); err != nil {
		return uuid.Nil, err
	}
	return created.Id, nil
}

func (s *importService) resolveAuthors(ctx context.Context, uow unitofwork.UnitOfWork, names []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		slug := utils.Slugify(name)

		author, err := uow.AuthorRepository().FindOne(ctx, specification.BySlug{Slug: slug})
		if err != nil {
			return nil, err
		}
		if author == nil {
			created := entity.Author{
				Id:        uuid.New(),
				Name:      name,
				Slug:      slug,
				CreatedAt: time.Now(),
			}
			if err := uow.AuthorRepository().Create(ctx, &created); err != nil {
				return nil, err
			}
			author = &created
		}
		ids = append(ids, author.Id)
	}
	return ids, nil
}
