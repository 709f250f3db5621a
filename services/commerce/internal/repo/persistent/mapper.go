package persistent

import (
	"wallpaperverse/services/commerce/internal/entity"
	"wallpaperverse/services/commerce/internal/model"
)

func ToAccountEntity(m *model.AccountModel) *entity.Account {
	if m == nil {
		return nil
	}

	return &entity.Account{
		ID:        m.ID,
		UserID:    m.UserID,
		Credits:   m.Credits,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToAuditEntity(m *model.CreditAuditModel) *entity.AuditEntry {
	if m == nil {
		return nil
	}

	return &entity.AuditEntry{
		ID:        m.ID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		Reason:    entity.AuditReason(m.Reason),
		Ref:       m.Ref,
		CreatedAt: m.CreatedAt,
	}
}

func ToGenerationEntity(m *model.GenerationModel) *entity.Generation {
	if m == nil {
		return nil
	}

	return &entity.Generation{
		ID:     m.ID,
		UserID: m.UserID,
		Prompt: m.Prompt,
		Style: entity.GenerationStyle{
			Aspect:      m.Aspect,
			StylePreset: m.StylePreset,
			Chromatic:   m.Chromatic,
		},
		Status:        entity.GenerationStatus(m.Status),
		CreditCost:    m.CreditCost,
		OriginalPath:  m.OriginalPath,
		ThumbnailPath: m.ThumbnailPath,
		Error:         m.Error,
		CreatedAt:     m.CreatedAt,
		CompletedAt:   m.CompletedAt,
	}
}

func ToGenerationModel(e *entity.Generation) *model.GenerationModel {
	if e == nil {
		return nil
	}

	return &model.GenerationModel{
		ID:            e.ID,
		UserID:        e.UserID,
		Prompt:        e.Prompt,
		Aspect:        e.Style.Aspect,
		StylePreset:   e.Style.StylePreset,
		Chromatic:     e.Style.Chromatic,
		Status:        string(e.Status),
		CreditCost:    e.CreditCost,
		OriginalPath:  e.OriginalPath,
		ThumbnailPath: e.ThumbnailPath,
		Error:         e.Error,
		CreatedAt:     e.CreatedAt,
		CompletedAt:   e.CompletedAt,
	}
}

func ToOwnershipEntity(m *model.OwnershipModel) *entity.Ownership {
	if m == nil {
		return nil
	}

	return &entity.Ownership{
		ID:        m.ID,
		UserID:    m.UserID,
		ItemType:  entity.OwnedItemType(m.ItemType),
		RefID:     m.RefID,
		Source:    entity.OwnershipSource(m.Source),
		CreatedAt: m.CreatedAt,
	}
}

func ToOwnershipModel(e *entity.Ownership) *model.OwnershipModel {
	if e == nil {
		return nil
	}

	return &model.OwnershipModel{
		ID:        e.ID,
		UserID:    e.UserID,
		ItemType:  string(e.ItemType),
		RefID:     e.RefID,
		Source:    string(e.Source),
		CreatedAt: e.CreatedAt,
	}
}

func ToWallpaperEntity(m *model.WallpaperModel) *entity.Wallpaper {
	if m == nil {
		return nil
	}

	return &entity.Wallpaper{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		Style:       m.Style,
		Price:       m.Price,
		ImagePath:   m.ImagePath,
		PreviewPath: m.PreviewPath,
		Sales:       m.Sales,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToReceiptEntity(m *model.ReceiptModel) *entity.Receipt {
	if m == nil {
		return nil
	}

	return &entity.Receipt{
		ID:             m.ID,
		UserID:         m.UserID,
		Store:          m.Store,
		ProductID:      m.ProductID,
		ProductType:    m.ProductType,
		TransactionID:  m.TransactionID,
		Raw:            m.Raw,
		Validated:      m.Validated,
		CreditsGranted: m.CreditsGranted,
		CreatedAt:      m.CreatedAt,
	}
}

func ToReceiptModel(e *entity.Receipt) *model.ReceiptModel {
	if e == nil {
		return nil
	}

	return &model.ReceiptModel{
		ID:             e.ID,
		UserID:         e.UserID,
		Store:          e.Store,
		ProductID:      e.ProductID,
		ProductType:    e.ProductType,
		TransactionID:  e.TransactionID,
		Raw:            e.Raw,
		Validated:      e.Validated,
		CreditsGranted: e.CreditsGranted,
		CreatedAt:      e.CreatedAt,
	}
}
