package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"newsroom-be/internal/dto"
	"newsroom-be/internal/pkg/logger"
	"newsroom-be/internal/repository/unitofwork"
	"newsroom-be/internal/service"
	"newsroom-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// exportFile mirrors the layout of `contentful space export`.
type exportFile struct {
	Entries []exportEntry `json:"entries"`
	Assets  []exportAsset `json:"assets"`
}

type exportEntry struct {
	Sys struct {
		ID          string `json:"id"`
		ContentType struct {
			Sys struct {
				ID string `json:"id"`
			} `json:"sys"`
		} `json:"contentType"`
	} `json:"sys"`
	Fields map[string]map[string]json.RawMessage `json:"fields"`
}

type exportAsset struct {
	Sys struct {
		ID string `json:"id"`
	} `json:"sys"`
	Fields map[string]map[string]json.RawMessage `json:"fields"`
}

// firstLocale returns the field value for whichever locale the export
// carries. The space is monolingual, the locale code just varies.
func firstLocale(locales map[string]json.RawMessage) json.RawMessage {
	for _, v := range locales {
		return v
	}
	return nil
}

func stringField(fields map[string]map[string]json.RawMessage, name string) string {
	raw := firstLocale(fields[name])
	if raw == nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func linkField(fields map[string]map[string]json.RawMessage, name string) string {
	raw := firstLocale(fields[name])
	if raw == nil {
		return ""
	}
	var link struct {
		Sys struct {
			ID string `json:"id"`
		} `json:"sys"`
	}
	if err := json.Unmarshal(raw, &link); err != nil {
		return ""
	}
	return link.Sys.ID
}

func assetToRequest(a exportAsset) *dto.ImportMediaRequest {
	req := &dto.ImportMediaRequest{
		ContentfulId: a.Sys.ID,
		Alt:          stringField(a.Fields, "title"),
		Legend:       stringField(a.Fields, "description"),
	}

	raw := firstLocale(a.Fields["file"])
	if raw == nil {
		return req
	}
	var file struct {
		URL      string `json:"url"`
		FileName string `json:"fileName"`
		Details  struct {
			Image struct {
				Width  int `json:"width"`
				Height int `json:"height"`
			} `json:"image"`
		} `json:"details"`
	}
	if err := json.Unmarshal(raw, &file); err != nil {
		return req
	}

	url := file.URL
	if len(url) >= 2 && url[:2] == "//" {
		url = "https:" + url
	}
	req.URL = url
	req.Filename = file.FileName
	req.Width = file.Details.Image.Width
	req.Height = file.Details.Image.Height
	return req
}

func entryToRequest(e exportEntry) *dto.ImportArticleRequest {
	req := &dto.ImportArticleRequest{
		ContentfulId: e.Sys.ID,
		Title:        stringField(e.Fields, "title"),
		Slug:         stringField(e.Fields, "slug"),
		Date:         stringField(e.Fields, "date"),
		PhotoAssetId: linkField(e.Fields, "photo"),
		Presentation: firstLocale(e.Fields["presentation"]),
		Body:         firstLocale(e.Fields["body"]),
	}

	if raw := firstLocale(e.Fields["category"]); raw != nil {
		var name string
		if json.Unmarshal(raw, &name) == nil {
			req.CategoryName = name
		}
	}
	if raw := firstLocale(e.Fields["authors"]); raw != nil {
		var names []string
		if json.Unmarshal(raw, &names) == nil {
			req.AuthorNames = names
		}
	}
	return req
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	path := os.Getenv("CONTENTFUL_EXPORT_PATH")
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path == "" {
		log.Fatal("Usage: migrate_contentful <export.json> (or set CONTENTFUL_EXPORT_PATH)")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Error: Failed to read export file: %v", err)
	}

	var export exportFile
	if err := json.Unmarshal(data, &export); err != nil {
		log.Fatalf("Error: Failed to parse export file: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger("logs/migrate.log", true)
	importService := service.NewImportService(uowFactory, sysLogger)

	ctx := context.Background()

	color.Cyan("🚀 Importing Contentful export: %s", path)
	color.Cyan("   %d assets, %d entries", len(export.Assets), len(export.Entries))

	// Assets first: the body importer resolves embedded images against the
	// media table.
	imported, skipped, failed := 0, 0, 0
	for _, a := range export.Assets {
		res, err := importService.ImportMedia(ctx, assetToRequest(a))
		if err != nil {
			color.Red("✗ asset %s: %v", a.Sys.ID, err)
			failed++
			continue
		}
		if res.Skipped {
			skipped++
		} else {
			imported++
		}
	}
	color.Green("Assets: %d imported, %d skipped, %d failed", imported, skipped, failed)

	imported, skipped, failed = 0, 0, 0
	for _, e := range export.Entries {
		if e.Sys.ContentType.Sys.ID != "article" {
			continue
		}
		req := entryToRequest(e)
		if req.Title == "" || len(req.Body) == 0 {
			color.Yellow("~ entry %s: missing title or body, skipping", e.Sys.ID)
			skipped++
			continue
		}
		res, err := importService.ImportArticle(ctx, req)
		if err != nil {
			color.Red("✗ entry %s (%s): %v", e.Sys.ID, req.Title, err)
			failed++
			continue
		}
		if res.Skipped {
			skipped++
		} else {
			imported++
			color.Green("✓ %s -> /%s", req.Title, res.Slug)
		}
	}
	color.Green("Articles: %d imported, %d skipped, %d failed", imported, skipped, failed)
}
