package main

import (
	"flag"
	"fmt"

	"wallpaperverse/pkg/config"
	"wallpaperverse/pkg/database"
	"wallpaperverse/pkg/logger"
	"wallpaperverse/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func main() {
	var startingCredits int
	flag.IntVar(&startingCredits, "credits", 10, "Starting credit balance for seeded accounts")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, startingCredits, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

type sampleWallpaper struct {
	Title       string
	Description string
	Category    string
	Style       string
	Price       int
}

var sampleWallpapers = []sampleWallpaper{
	{"Mountain Sunset", "Beautiful sunset over mountain peaks", "Nature", "realistic", 1},
	{"Abstract Waves", "Flowing abstract wave patterns", "Abstract", "abstract", 1},
	{"Minimal Dark", "Clean and minimal dark design", "Minimal", "minimalist", 1},
	{"Cosmic Galaxy", "Stunning view of distant galaxies", "Space", "realistic", 2},
	{"Urban Night", "City lights at night", "Urban", "realistic", 1},
	{"Geometric Patterns", "Bold geometric patterns", "Abstract", "digital-art", 1},
	{"Ocean Waves", "Crystal clear ocean waves", "Nature", "realistic", 2},
}

func seedDatabase(db *gorm.DB, startingCredits int, log *logger.Logger) error {
	// Demo accounts with a starting balance
	for i := 0; i < 3; i++ {
		account := &models.Account{
			UserID:  uuid.New().String(),
			Credits: startingCredits,
		}
		if err := db.Create(account).Error; err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}
		log.Info("Seeded account %s with %d credits", account.UserID, account.Credits)
	}

	// Wallpaper catalog
	for _, w := range sampleWallpapers {
		id := uuid.New().String()
		wallpaper := &models.Wallpaper{
			ID:          id,
			Title:       w.Title,
			Description: w.Description,
			Category:    w.Category,
			Style:       w.Style,
			Price:       w.Price,
			ImagePath:   fmt.Sprintf("public/wallpapers/%s/full.jpg", id),
			PreviewPath: fmt.Sprintf("public/wallpapers/%s/thumb.jpg", id),
		}
		if err := db.Create(wallpaper).Error; err != nil {
			return fmt.Errorf("failed to create wallpaper %q: %w", w.Title, err)
		}
		log.Info("Seeded wallpaper %q (%d credits)", w.Title, w.Price)
	}

	return nil
}
