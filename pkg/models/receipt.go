package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Receipt records a store transaction that has already been credited.
// The (user_id, transaction_id) unique index is the idempotency guard.
type Receipt struct {
	ID             string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID         string    `gorm:"type:uuid;not null;uniqueIndex:idx_receipts_user_txn" json:"user_id"`
	Store          string    `gorm:"type:varchar(20);not null" json:"store"`
	ProductID      string    `gorm:"type:varchar(64);not null" json:"product_id"`
	ProductType    string    `gorm:"type:varchar(16);not null" json:"product_type"`
	TransactionID  string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_receipts_user_txn" json:"transaction_id"`
	Raw            string    `gorm:"type:text" json:"-"`
	Validated      bool      `gorm:"not null" json:"validated"`
	CreditsGranted int       `gorm:"not null" json:"credits_granted"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Receipt) TableName() string {
	return "receipts"
}

func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
