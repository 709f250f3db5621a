package persistent

import (
	"errors"

	"wallpaperverse/services/commerce/internal/entity"
	"wallpaperverse/services/commerce/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReceiptRepository interface {
	FindByTransaction(userID, transactionID string) (*entity.Receipt, error)
	RecordGrant(receipt *entity.Receipt) error
}

type receiptRepository struct {
	db *gorm.DB
}

func NewReceiptRepository(db *gorm.DB) ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) FindByTransaction(userID, transactionID string) (*entity.Receipt, error) {
	var receiptModel model.ReceiptModel
	err := r.db.Where("user_id = ? AND transaction_id = ?", userID, transactionID).
		First(&receiptModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToReceiptEntity(&receiptModel), nil
}

// RecordGrant credits the account, appends the audit entry and stores the
// receipt as one transaction. A concurrent duplicate of the same
// (user, transaction) loses to the unique index and rolls the whole unit
// back, so credits are granted at most once per store transaction.
func (r *receiptRepository) RecordGrant(receipt *entity.Receipt) error {
	receiptModel := ToReceiptModel(receipt)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(receiptModel).Error; err != nil {
			return err
		}

		if receipt.CreditsGranted == 0 {
			return nil
		}

		var accountModel model.AccountModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", receipt.UserID).
			First(&accountModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrAccountNotFound
			}
			return err
		}

		if err := tx.Model(&accountModel).
			Update("credits", accountModel.Credits+receipt.CreditsGranted).Error; err != nil {
			return err
		}

		audit := model.CreditAuditModel{
			UserID: receipt.UserID,
			Amount: receipt.CreditsGranted,
			Reason: string(entity.ReasonGrant),
			Ref:    receipt.TransactionID,
		}
		return tx.Create(&audit).Error
	})
	if err != nil {
		return err
	}

	receipt.ID = receiptModel.ID
	return nil
}
