package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OwnedItemType string

const (
	ItemTypeWallpaper  OwnedItemType = "wallpaper"
	ItemTypeGeneration OwnedItemType = "generation"
)

type OwnershipSource string

const (
	SourcePurchase OwnershipSource = "purchase"
	SourceUnlock   OwnershipSource = "unlock"
)

// Ownership is a permanent grant of access to an item. The composite
// unique index makes duplicate grants impossible at the storage layer.
type Ownership struct {
	ID        string          `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string          `gorm:"type:uuid;not null;uniqueIndex:idx_ownerships_user_ref" json:"user_id"`
	ItemType  OwnedItemType   `gorm:"type:varchar(20);not null" json:"item_type"`
	RefID     string          `gorm:"type:uuid;not null;uniqueIndex:idx_ownerships_user_ref" json:"ref_id"`
	Source    OwnershipSource `gorm:"type:varchar(20);not null" json:"source"`
	CreatedAt time.Time       `json:"created_at"`
}

func (Ownership) TableName() string {
	return "ownerships"
}

func (o *Ownership) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}
