package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccount_BeforeCreate(t *testing.T) {
	account := &Account{
		UserID:  "user-123",
		Credits: 5,
	}

	// BeforeCreate should set ID if empty
	err := account.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, account.ID)
}

func TestAccount_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-id-123"
	account := &Account{
		ID:     existingID,
		UserID: "user-123",
	}

	err := account.BeforeCreate(nil)
	assert.NoError(t, err)
	// ID should remain unchanged if already set
	assert.Equal(t, existingID, account.ID)
}

func TestGeneration_BeforeCreate(t *testing.T) {
	gen := &Generation{
		UserID:     "user-123",
		Prompt:     "a mountain at dusk",
		Aspect:     "9:16",
		Status:     GenerationQueued,
		CreditCost: 2,
	}

	err := gen.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, gen.ID)
}

func TestGenerationStatus_Constants(t *testing.T) {
	assert.Equal(t, GenerationStatus("queued"), GenerationQueued)
	assert.Equal(t, GenerationStatus("running"), GenerationRunning)
	assert.Equal(t, GenerationStatus("succeeded"), GenerationSucceeded)
	assert.Equal(t, GenerationStatus("failed"), GenerationFailed)
}

func TestAuditReason_Constants(t *testing.T) {
	assert.Equal(t, AuditReason("generation"), ReasonGeneration)
	assert.Equal(t, AuditReason("unlock"), ReasonUnlock)
	assert.Equal(t, AuditReason("download"), ReasonDownload)
	assert.Equal(t, AuditReason("grant"), ReasonGrant)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "accounts", Account{}.TableName())
	assert.Equal(t, "credit_audits", CreditAudit{}.TableName())
	assert.Equal(t, "generations", Generation{}.TableName())
	assert.Equal(t, "ownerships", Ownership{}.TableName())
	assert.Equal(t, "wallpapers", Wallpaper{}.TableName())
	assert.Equal(t, "receipts", Receipt{}.TableName())
}
