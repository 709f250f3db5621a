package persistent

import (
	"errors"

	"wallpaperverse/services/commerce/internal/entity"
	"wallpaperverse/services/commerce/internal/model"

	"gorm.io/gorm"
)

type WallpaperRepository interface {
	GetByID(wallpaperID string) (*entity.Wallpaper, error)
	List(limit, offset int, category string) ([]*entity.Wallpaper, error)
}

type wallpaperRepository struct {
	db *gorm.DB
}

func NewWallpaperRepository(db *gorm.DB) WallpaperRepository {
	return &wallpaperRepository{db: db}
}

func (r *wallpaperRepository) GetByID(wallpaperID string) (*entity.Wallpaper, error) {
	var wallpaperModel model.WallpaperModel
	if err := r.db.Where("id = ?", wallpaperID).First(&wallpaperModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToWallpaperEntity(&wallpaperModel), nil
}

func (r *wallpaperRepository) List(limit, offset int, category string) ([]*entity.Wallpaper, error) {
	var wallpaperModels []model.WallpaperModel
	query := r.db.Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&wallpaperModels).Error; err != nil {
		return nil, err
	}

	wallpapers := make([]*entity.Wallpaper, len(wallpaperModels))
	for i := range wallpaperModels {
		wallpapers[i] = ToWallpaperEntity(&wallpaperModels[i])
	}
	return wallpapers, nil
}
