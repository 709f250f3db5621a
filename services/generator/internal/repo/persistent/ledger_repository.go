package persistent

import (
	"errors"

	"wallpaperverse/services/generator/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidAmount   = errors.New("amount must be positive")
)

// LedgerRepository covers the worker's only ledger operation: crediting
// an account back when a paid job fails.
type LedgerRepository interface {
	Credit(userID string, amount int, reason, ref string) error
}

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

// Credit adds amount to the account balance and appends one audit entry,
// in a single transaction holding a row lock on the account. Amount must
// be positive.
func (r *ledgerRepository) Credit(userID string, amount int, reason, ref string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var accountModel model.AccountModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&accountModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return err
		}

		if err := tx.Model(&accountModel).
			Update("credits", accountModel.Credits+amount).Error; err != nil {
			return err
		}

		audit := model.CreditAuditModel{
			UserID: userID,
			Amount: amount,
			Reason: reason,
			Ref:    ref,
		}
		return tx.Create(&audit).Error
	})
}
