package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GenerationModel struct {
	ID            string     `gorm:"type:uuid;primary_key" json:"id"`
	UserID        string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Prompt        string     `gorm:"type:text;not null" json:"prompt"`
	Aspect        string     `gorm:"type:varchar(10);not null" json:"aspect"`
	StylePreset   string     `gorm:"type:varchar(40)" json:"style_preset"`
	Chromatic     float64    `gorm:"default:1.0" json:"chromatic"`
	Status        string     `gorm:"type:varchar(20);not null;index" json:"status"`
	CreditCost    int        `gorm:"not null" json:"credit_cost"`
	OriginalPath  string     `gorm:"type:varchar(255)" json:"original_path,omitempty"`
	ThumbnailPath string     `gorm:"type:varchar(255)" json:"thumbnail_path,omitempty"`
	Error         string     `gorm:"type:text" json:"error,omitempty"`
	CreatedAt     time.Time  `gorm:"index" json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

func (GenerationModel) TableName() string {
	return "generations"
}

func (g *GenerationModel) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	return nil
}
