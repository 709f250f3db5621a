package usecase

import (
	"fmt"
	"time"

	"wallpaperverse/pkg/jwt"
	"wallpaperverse/pkg/logger"
	"wallpaperverse/services/commerce/internal/entity"
	"wallpaperverse/services/commerce/internal/repo/persistent"
)

// spendTokenTTL bounds how long a spend capability token stays usable.
const spendTokenTTL = 5 * time.Minute

type LedgerUseCase interface {
	GetWallet(userID string) (*entity.Account, error)
	GetAuditLog(userID string, limit, offset int) ([]*entity.AuditEntry, error)
	Spend(userID string, amount int, reason entity.AuditReason, ref string) (string, error)
}

type ledgerUseCase struct {
	ledgerRepo persistent.LedgerRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewLedgerUseCase(ledgerRepo persistent.LedgerRepository, jwtService *jwt.Service, logger *logger.Logger) LedgerUseCase {
	return &ledgerUseCase{
		ledgerRepo: ledgerRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *ledgerUseCase) GetWallet(userID string) (*entity.Account, error) {
	account, err := uc.ledgerRepo.GetAccount(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func (uc *ledgerUseCase) GetAuditLog(userID string, limit, offset int) ([]*entity.AuditEntry, error) {
	entries, err := uc.ledgerRepo.GetAuditEntries(userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit entries: %w", err)
	}
	return entries, nil
}

// Spend debits the caller's account and returns a short-lived capability
// token proving that the debit happened, for use in follow-up calls.
func (uc *ledgerUseCase) Spend(userID string, amount int, reason entity.AuditReason, ref string) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("%w: amount must be greater than 0", entity.ErrInvalidArgument)
	}
	if !entity.ValidSpendReason(reason) {
		return "", fmt.Errorf("%w: unknown spend reason %q", entity.ErrInvalidArgument, reason)
	}

	if _, err := uc.ledgerRepo.Debit(userID, amount, reason, ref); err != nil {
		return "", err
	}

	token, err := uc.jwtService.GenerateCapabilityToken(userID, string(reason), spendTokenTTL)
	if err != nil {
		uc.logger.Error("Failed to mint spend token for %s: %v", userID, err)
		return "", fmt.Errorf("failed to mint spend token: %w", err)
	}

	uc.logger.Info("Credits spent: %s - %d credits for %s", userID, amount, reason)
	return token, nil
}
