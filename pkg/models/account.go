package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditReason string

const (
	ReasonGeneration AuditReason = "generation"
	ReasonUnlock     AuditReason = "unlock"
	ReasonDownload   AuditReason = "download"
	ReasonGrant      AuditReason = "grant"
)

// Account holds a user's credit balance. Accounts are pre-provisioned
// (by seed or on sign-up); the ledger only ever mutates credits.
type Account struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Credits   int       `gorm:"default:0" json:"credits"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// CreditAudit is an append-only record of one balance change.
type CreditAudit struct {
	ID        string      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string      `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount    int         `gorm:"not null" json:"amount"`
	Reason    AuditReason `gorm:"type:varchar(20);not null" json:"reason"`
	Ref       string      `gorm:"type:varchar(128)" json:"ref,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

func (CreditAudit) TableName() string {
	return "credit_audits"
}

func (a *CreditAudit) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
