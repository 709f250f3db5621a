package persistent

import (
	"errors"
	"fmt"

	"wallpaperverse/services/commerce/internal/entity"
	"wallpaperverse/services/commerce/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LedgerRepository interface {
	GetAccount(userID string) (*entity.Account, error)
	GetAuditEntries(userID string, limit, offset int) ([]*entity.AuditEntry, error)
	Debit(userID string, amount int, reason entity.AuditReason, ref string) (*entity.AuditEntry, error)
	Credit(userID string, amount int, reason entity.AuditReason, ref string) (*entity.AuditEntry, error)
}

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) GetAccount(userID string) (*entity.Account, error) {
	var accountModel model.AccountModel
	if err := r.db.Where("user_id = ?", userID).First(&accountModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrAccountNotFound
		}
		return nil, err
	}
	return ToAccountEntity(&accountModel), nil
}

func (r *ledgerRepository) GetAuditEntries(userID string, limit, offset int) ([]*entity.AuditEntry, error) {
	var auditModels []model.CreditAuditModel
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&auditModels).Error; err != nil {
		return nil, err
	}

	entries := make([]*entity.AuditEntry, len(auditModels))
	for i := range auditModels {
		entries[i] = ToAuditEntity(&auditModels[i])
	}
	return entries, nil
}

// Debit subtracts amount from the account balance and appends one audit
// entry, as a single transaction holding a row lock on the account. Two
// concurrent debits against the same account serialize on that lock, so
// the balance can never go negative. Amount must be positive; a zero or
// negative amount never reaches the database.
func (r *ledgerRepository) Debit(userID string, amount int, reason entity.AuditReason, ref string) (*entity.AuditEntry, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: debit amount must be greater than 0", entity.ErrInvalidArgument)
	}
	return r.apply(userID, -amount, reason, ref)
}

// Credit adds amount to the account balance and appends one audit entry,
// under the same locking discipline and amount validation as Debit.
func (r *ledgerRepository) Credit(userID string, amount int, reason entity.AuditReason, ref string) (*entity.AuditEntry, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: credit amount must be greater than 0", entity.ErrInvalidArgument)
	}
	return r.apply(userID, amount, reason, ref)
}

func (r *ledgerRepository) apply(userID string, delta int, reason entity.AuditReason, ref string) (*entity.AuditEntry, error) {
	var auditModel model.CreditAuditModel

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var accountModel model.AccountModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&accountModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrAccountNotFound
			}
			return err
		}

		if accountModel.Credits+delta < 0 {
			return entity.ErrInsufficientCredits
		}

		if err := tx.Model(&accountModel).
			Update("credits", accountModel.Credits+delta).Error; err != nil {
			return err
		}

		auditModel = model.CreditAuditModel{
			UserID: userID,
			Amount: delta,
			Reason: string(reason),
			Ref:    ref,
		}
		return tx.Create(&auditModel).Error
	})
	if err != nil {
		return nil, err
	}

	return ToAuditEntity(&auditModel), nil
}
