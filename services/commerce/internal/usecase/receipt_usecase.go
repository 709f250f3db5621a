package usecase

import (
	"context"
	"errors"
	"fmt"

	"wallpaperverse/pkg/logger"
	"wallpaperverse/services/commerce/internal/entity"
	"wallpaperverse/services/commerce/internal/repo/persistent"
	"wallpaperverse/services/commerce/internal/storeclient"

	"gorm.io/gorm"
)

type ReceiptUseCase interface {
	ValidateReceipt(ctx context.Context, userID, raw, platform string) (*entity.Receipt, error)
}

type receiptUseCase struct {
	receiptRepo persistent.ReceiptRepository
	validator   storeclient.Validator
	logger      *logger.Logger
}

func NewReceiptUseCase(
	receiptRepo persistent.ReceiptRepository,
	validator storeclient.Validator,
	logger *logger.Logger,
) ReceiptUseCase {
	return &receiptUseCase{
		receiptRepo: receiptRepo,
		validator:   validator,
		logger:      logger,
	}
}

// ValidateReceipt verifies a store receipt and grants the mapped credits
// exactly once per (user, transaction). Replays return the stored receipt
// without touching the ledger.
func (uc *receiptUseCase) ValidateReceipt(ctx context.Context, userID, raw, platform string) (*entity.Receipt, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: receipt payload is required", entity.ErrInvalidArgument)
	}
	if platform != "ios" && platform != "android" {
		return nil, fmt.Errorf("%w: platform must be ios or android", entity.ErrInvalidArgument)
	}

	result, err := uc.validator.Validate(ctx, raw, platform)
	if err != nil {
		return nil, fmt.Errorf("store validation call failed: %w", err)
	}
	if !result.Validated || result.TransactionID == "" {
		return nil, entity.ErrReceiptInvalid
	}

	// Idempotency: a transaction already credited returns its receipt.
	existing, err := uc.receiptRepo.FindByTransaction(userID, result.TransactionID)
	if err == nil {
		uc.logger.Info("Receipt already processed: %s", result.TransactionID)
		return existing, nil
	}
	if !errors.Is(err, entity.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up receipt: %w", err)
	}

	store := "play"
	if platform == "ios" {
		store = "appstore"
	}

	productType := entity.ProductConsumable
	if entity.IsSubscription(result.ProductID) {
		productType = entity.ProductSubscription
	}

	receipt := &entity.Receipt{
		UserID:         userID,
		Store:          store,
		ProductID:      result.ProductID,
		ProductType:    productType,
		TransactionID:  result.TransactionID,
		Raw:            raw,
		Validated:      true,
		CreditsGranted: entity.ProductCredits(result.ProductID),
	}

	if err := uc.receiptRepo.RecordGrant(receipt); err != nil {
		// Lost a race with a concurrent replay of the same transaction.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return uc.receiptRepo.FindByTransaction(userID, result.TransactionID)
		}
		return nil, fmt.Errorf("failed to record receipt: %w", err)
	}

	uc.logger.Info("Receipt validated for %s: %d credits granted", userID, receipt.CreditsGranted)
	return receipt, nil
}
