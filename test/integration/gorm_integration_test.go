package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"newsroom-be/internal/entity"
	"newsroom-be/internal/repository/specification"
	"newsroom-be/internal/repository/unitofwork"
	"newsroom-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.ArticleRepository())
	assert.NotNil(t, uow.FrontPageRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Article Repository", func(t *testing.T) {
		count, err := uow.ArticleRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Article count: %d", count)
	})

	t.Run("Check Transactional Article Creation", func(t *testing.T) {
		ctx := context.Background()

		category := &entity.Category{
			Id:        uuid.New(),
			Name:      "Integration " + uuid.New().String(),
			Slug:      "integration-" + uuid.New().String(),
			CreatedAt: time.Now(),
		}
		err := uow.CategoryRepository().Create(ctx, category)
		assert.NoError(t, err)

		author := &entity.Author{
			Id:        uuid.New(),
			Name:      "Integration Author",
			Slug:      "integration-author-" + uuid.New().String(),
			CreatedAt: time.Now(),
		}
		err = uow.AuthorRepository().Create(ctx, author)
		assert.NoError(t, err)

		// Transaction Test
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		article := &entity.Article{
			Id:          uuid.New(),
			Title:       "Integration Article",
			Slug:        "integration-article-" + uuid.New().String(),
			PublishedAt: time.Now(),
			CategoryId:  category.Id,
			AuthorIds:   []uuid.UUID{author.Id},
			Body:        `{"root":{"children":[],"type":"root","version":1}}`,
			Published:   true,
			CreatedAt:   time.Now(),
		}
		err = uow.ArticleRepository().Create(ctx, article)
		assert.NoError(t, err)

		fp, err := uow.FrontPageRepository().Get(ctx)
		assert.NoError(t, err)
		fp.ArticleIds = append(fp.ArticleIds, article.Id)
		fp.UpdatedAt = time.Now()
		err = uow.FrontPageRepository().Set(ctx, fp)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		// Round-trip: the uuid list column decodes back in order.
		loaded, err := uow.ArticleRepository().FindOne(ctx, specification.BySlug{Slug: article.Slug})
		assert.NoError(t, err)
		if assert.NotNil(t, loaded) {
			assert.Equal(t, []uuid.UUID{author.Id}, loaded.AuthorIds)
		}

		t.Log("Successfully created Article and Front Page selection in Transaction")
	})
}
