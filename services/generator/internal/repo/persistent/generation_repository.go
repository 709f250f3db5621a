package persistent

import (
	"time"

	"wallpaperverse/services/generator/internal/entity"
	"wallpaperverse/services/generator/internal/model"

	"gorm.io/gorm"
)

type GenerationRepository interface {
	ListQueued(limit int) ([]*entity.Generation, error)
	Claim(genID string) (bool, error)
	MarkSucceeded(genID, originalPath, thumbnailPath string) error
	MarkFailed(genID, errMsg string) error
}

type generationRepository struct {
	db *gorm.DB
}

func NewGenerationRepository(db *gorm.DB) GenerationRepository {
	return &generationRepository{db: db}
}

// ListQueued returns up to limit queued jobs, oldest first, so a backlog
// drains in submission order.
func (r *generationRepository) ListQueued(limit int) ([]*entity.Generation, error) {
	var genModels []model.GenerationModel
	if err := r.db.Where("status = ?", string(entity.GenerationQueued)).
		Order("created_at ASC").
		Limit(limit).
		Find(&genModels).Error; err != nil {
		return nil, err
	}

	gens := make([]*entity.Generation, len(genModels))
	for i := range genModels {
		gens[i] = ToGenerationEntity(&genModels[i])
	}
	return gens, nil
}

// Claim flips a job from queued to running. The status predicate makes
// the update conditional, so with any number of concurrent workers exactly
// one sees a row affected and the rest skip the job.
func (r *generationRepository) Claim(genID string) (bool, error) {
	res := r.db.Model(&model.GenerationModel{}).
		Where("id = ? AND status = ?", genID, string(entity.GenerationQueued)).
		Update("status", string(entity.GenerationRunning))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *generationRepository) MarkSucceeded(genID, originalPath, thumbnailPath string) error {
	now := time.Now()
	res := r.db.Model(&model.GenerationModel{}).
		Where("id = ?", genID).
		Updates(map[string]interface{}{
			"status":         string(entity.GenerationSucceeded),
			"original_path":  originalPath,
			"thumbnail_path": thumbnailPath,
			"completed_at":   &now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *generationRepository) MarkFailed(genID, errMsg string) error {
	now := time.Now()
	res := r.db.Model(&model.GenerationModel{}).
		Where("id = ?", genID).
		Updates(map[string]interface{}{
			"status":       string(entity.GenerationFailed),
			"error":        errMsg,
			"completed_at": &now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
