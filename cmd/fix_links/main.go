package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"newsroom-be/internal/repository/specification"
	"newsroom-be/internal/repository/unitofwork"
	"newsroom-be/pkg/database"
	"newsroom-be/pkg/richtext"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Repairs article bodies where source references were flattened to plain
// text, e.g. `(1) Source : "Le Monde" (https://...)`. Run with --dry-run to
// see what would change.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dryRun := len(os.Args) > 1 && os.Args[1] == "--dry-run"

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	articles, err := uow.ArticleRepository().FindAll(ctx, specification.OrderBy{Field: "created_at"})
	if err != nil {
		log.Fatalf("Error: Failed to load articles: %v", err)
	}

	color.Cyan("🔍 Scanning %d articles for malformed source links", len(articles))

	patched, untouched, skipped := 0, 0, 0
	for _, article := range articles {
		content := richtext.ParseContent(article.Body)
		if content.Doc == nil {
			skipped++ // legacy HTML rows have nothing to patch
			continue
		}

		fixed, changed := richtext.FixMalformedLinks(content.Doc)
		if !changed {
			untouched++
			continue
		}

		if dryRun {
			color.Yellow("~ would patch %s (%s)", article.Slug, article.Id)
			patched++
			continue
		}

		bodyJson, err := json.Marshal(fixed)
		if err != nil {
			color.Red("✗ %s: %v", article.Slug, err)
			continue
		}
		now := time.Now()
		article.Body = string(bodyJson)
		article.UpdatedAt = &now

		if err := uow.ArticleRepository().Update(ctx, article); err != nil {
			color.Red("✗ %s: %v", article.Slug, err)
			continue
		}
		color.Green("✓ patched %s", article.Slug)
		patched++
	}

	color.Green("Done: %d patched, %d untouched, %d legacy rows skipped", patched, untouched, skipped)
}
