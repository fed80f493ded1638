package main

import (
	"log"
	"os"
	"time"

	"newsroom-be/internal/model"
	"newsroom-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the first admin account and the site's section navigation. Safe to
// run repeatedly: existing rows are left alone.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding admin account...")

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@localhost"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "changez-moi"
		log.Println("Warn: ADMIN_PASSWORD not set, using the default. Change it.")
	}

	var existing model.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		log.Printf("Admin '%s' already exists, skipping...", adminEmail)
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Error: Failed to hash password: %v", err)
		}
		admin := model.User{
			Id:           uuid.New(),
			Email:        adminEmail,
			FullName:     "Administrateur",
			PasswordHash: string(hash),
			Role:         "admin",
			CreatedAt:    time.Now(),
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("Error: Failed to create admin: %v", err)
		}
		log.Printf("Created admin '%s'", adminEmail)
	}

	log.Println("Seeding section navigation...")

	categories := []model.Category{
		{Id: uuid.New(), Name: "Actualités", Slug: "actualites", Position: 1, CreatedAt: time.Now()},
		{Id: uuid.New(), Name: "Politique", Slug: "politique", Position: 2, CreatedAt: time.Now()},
		{Id: uuid.New(), Name: "Économie", Slug: "economie", Position: 3, CreatedAt: time.Now()},
		{Id: uuid.New(), Name: "Culture", Slug: "culture", Position: 4, CreatedAt: time.Now()},
		{Id: uuid.New(), Name: "Sports", Slug: "sports", Position: 5, CreatedAt: time.Now()},
	}

	for _, c := range categories {
		var found model.Category
		if err := db.Where("slug = ?", c.Slug).First(&found).Error; err == nil {
			log.Printf("Category '%s' already exists, skipping...", c.Slug)
			continue
		}
		if err := db.Create(&c).Error; err != nil {
			log.Printf("Warn: Failed to create category '%s': %v", c.Slug, err)
			continue
		}
		log.Printf("Created category '%s'", c.Slug)
	}

	log.Println("✅ Success: Seeding completed.")
}
