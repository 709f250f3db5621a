package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OwnershipModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_ownerships_user_ref" json:"user_id"`
	ItemType  string    `gorm:"type:varchar(20);not null" json:"item_type"`
	RefID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_ownerships_user_ref" json:"ref_id"`
	Source    string    `gorm:"type:varchar(20);not null" json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

func (OwnershipModel) TableName() string {
	return "ownerships"
}

func (o *OwnershipModel) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}
