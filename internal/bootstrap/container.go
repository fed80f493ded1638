package bootstrap

import (
	"context"
	"log"

	"newsroom-be/internal/config"
	"newsroom-be/internal/controller"
	"newsroom-be/internal/handler"
	"newsroom-be/internal/pkg/logger"
	"newsroom-be/internal/pkg/mailer"
	"newsroom-be/internal/repository/unitofwork"
	"newsroom-be/internal/service"
	"newsroom-be/pkg/richtext"

	pkgNats "newsroom-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ArticleController   controller.IArticleController
	AuthorController    controller.IAuthorController
	CategoryController  controller.ICategoryController
	FrontPageController controller.IFrontPageController
	SearchController    controller.ISearchController
	ContactController   controller.IContactController
	AuthController      controller.IAuthController
	ImportController    controller.IImportController

	// Background services (exposed for main.go to run)
	RenderConsumerService service.IRenderConsumerService

	// WebSockets
	PreviewHandler *handler.PreviewHandler
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(cfg, sysLogger)

	renderer := richtext.NewRenderer(richtext.WithLogger(sysLogger.Zap()))

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 3. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Render.Topic)
	renderConsumerService := service.NewRenderConsumerService(
		pubSub,
		cfg.Render.Topic,
		uowFactory,
		renderer,
		sysLogger,
	)

	articleService := service.NewArticleService(uowFactory, publisherService, natsPub, sysLogger)
	authorService := service.NewAuthorService(uowFactory)
	categoryService := service.NewCategoryService(uowFactory)
	frontPageService := service.NewFrontPageService(uowFactory, rdb, sysLogger)
	searchService := service.NewSearchService(uowFactory)
	contactService := service.NewContactService(emailService)
	authService := service.NewAuthService(uowFactory, cfg)
	importService := service.NewImportService(uowFactory, sysLogger)

	// Preview sessions are chatty; keep them out of the main log.
	previewLogger := logger.NewIsolatedLogger("logs/preview.log")
	previewHandler := handler.NewPreviewHandler(renderer, previewLogger)

	// 4. Controllers
	return &Container{
		ArticleController:   controller.NewArticleController(articleService),
		AuthorController:    controller.NewAuthorController(authorService),
		CategoryController:  controller.NewCategoryController(categoryService),
		FrontPageController: controller.NewFrontPageController(frontPageService),
		SearchController:    controller.NewSearchController(searchService),
		ContactController:   controller.NewContactController(contactService),
		AuthController:      controller.NewAuthController(authService),
		ImportController:    controller.NewImportController(importService),

		RenderConsumerService: renderConsumerService,

		PreviewHandler: previewHandler,
	}
}
