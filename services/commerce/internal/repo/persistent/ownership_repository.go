package persistent

import (
	"errors"

	"wallpaperverse/services/commerce/internal/entity"
	"wallpaperverse/services/commerce/internal/model"

	"gorm.io/gorm"
)

type OwnershipRepository interface {
	Exists(userID, refID string) (bool, error)
	Create(ownership *entity.Ownership) error
	CreateWithSale(ownership *entity.Ownership, wallpaperID string) error
}

type ownershipRepository struct {
	db *gorm.DB
}

func NewOwnershipRepository(db *gorm.DB) OwnershipRepository {
	return &ownershipRepository{db: db}
}

func (r *ownershipRepository) Exists(userID, refID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.OwnershipModel{}).
		Where("user_id = ? AND ref_id = ?", userID, refID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts an ownership record. A concurrent duplicate loses to the
// unique (user_id, ref_id) index and is reported as success, making the
// grant idempotent.
func (r *ownershipRepository) Create(ownership *entity.Ownership) error {
	ownershipModel := ToOwnershipModel(ownership)
	if err := r.db.Create(ownershipModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	ownership.ID = ownershipModel.ID
	return nil
}

// CreateWithSale inserts the ownership record and increments the
// wallpaper's sales counter as one transaction.
func (r *ownershipRepository) CreateWithSale(ownership *entity.Ownership, wallpaperID string) error {
	ownershipModel := ToOwnershipModel(ownership)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ownershipModel).Error; err != nil {
			return err
		}
		return tx.Model(&model.WallpaperModel{}).
			Where("id = ?", wallpaperID).
			Update("sales", gorm.Expr("sales + 1")).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}

	ownership.ID = ownershipModel.ID
	return nil
}
