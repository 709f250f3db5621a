package persistent

import (
	"errors"

	"wallpaperverse/services/commerce/internal/entity"
	"wallpaperverse/services/commerce/internal/model"

	"gorm.io/gorm"
)

type GenerationRepository interface {
	Create(gen *entity.Generation) error
	GetByID(genID string) (*entity.Generation, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Generation, error)
}

type generationRepository struct {
	db *gorm.DB
}

func NewGenerationRepository(db *gorm.DB) GenerationRepository {
	return &generationRepository{db: db}
}

func (r *generationRepository) Create(gen *entity.Generation) error {
	genModel := ToGenerationModel(gen)
	if err := r.db.Create(genModel).Error; err != nil {
		return err
	}
	gen.ID = genModel.ID
	gen.CreatedAt = genModel.CreatedAt
	return nil
}

func (r *generationRepository) GetByID(genID string) (*entity.Generation, error) {
	var genModel model.GenerationModel
	if err := r.db.Where("id = ?", genID).First(&genModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToGenerationEntity(&genModel), nil
}

func (r *generationRepository) ListByUser(userID string, limit, offset int) ([]*entity.Generation, error) {
	var genModels []model.GenerationModel
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&genModels).Error; err != nil {
		return nil, err
	}

	gens := make([]*entity.Generation, len(genModels))
	for i := range genModels {
		gens[i] = ToGenerationEntity(&genModels[i])
	}
	return gens, nil
}
