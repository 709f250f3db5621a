package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WallpaperModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	Title       string    `gorm:"type:varchar(120);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"type:varchar(40);index" json:"category"`
	Style       string    `gorm:"type:varchar(40)" json:"style"`
	Price       int       `gorm:"not null;default:1" json:"price"`
	ImagePath   string    `gorm:"type:varchar(255)" json:"image_path"`
	PreviewPath string    `gorm:"type:varchar(255)" json:"preview_path"`
	Sales       int       `gorm:"default:0" json:"sales"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (WallpaperModel) TableName() string {
	return "wallpapers"
}

func (w *WallpaperModel) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}
