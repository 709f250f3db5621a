package persistent

import (
	"wallpaperverse/services/generator/internal/entity"
	"wallpaperverse/services/generator/internal/model"
)

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
