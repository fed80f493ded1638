package service

import (
	"context"
	"encoding/json"
	"time"

	"newsroom-be/internal/dto"
	"newsroom-be/internal/pkg/logger"
	"newsroom-be/internal/repository/specification"
	"newsroom-be/internal/repository/unitofwork"
	"newsroom-be/pkg/richtext"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IRenderConsumerService interface {
	Consume(ctx context.Context) error
}

// renderConsumerService drains the render topic: for each job it re-renders
// the article body to HTML and re-extracts the summary, then persists both
// derived columns.
type renderConsumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	renderer   *richtext.Renderer
	log        logger.ILogger
}

func NewRenderConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	renderer *richtext.Renderer,
	log logger.ILogger,
) IRenderConsumerService {
	return &renderConsumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		renderer:   renderer,
		log:        log,
	}
}

func (cs *renderConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *renderConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.RenderArticleMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("render", "failed to unmarshal render job", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads never become valid, do not retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	article, err := uow.ArticleRepository().FindOne(ctx, specification.ByID{ID: payload.ArticleId})
	if err != nil {
		cs.log.Error("render", "failed to load article", map[string]interface{}{
			"article_id": payload.ArticleId,
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}
	if article == nil {
		// Deleted between enqueue and processing.
		msg.Ack()
		return
	}

	content := richtext.ParseContent(article.Body)

	now := time.Now()
	article.ContentHTML = cs.renderer.Render(content)
	article.Summary = richtext.ToPlainText(content)
	article.UpdatedAt = &now

	if err := uow.ArticleRepository().Update(ctx, article); err != nil {
		cs.log.Error("render", "failed to persist rendered article", map[string]interface{}{
			"article_id": article.Id,
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}

	cs.log.Info("render", "article rendered", map[string]interface{}{
		"article_id": article.Id,
		"html_bytes": len(article.ContentHTML),
	})
	msg.Ack()
}
