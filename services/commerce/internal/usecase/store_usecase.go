package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wallpaperverse/pkg/logger"
	"wallpaperverse/services/commerce/internal/entity"
	"wallpaperverse/services/commerce/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

const wallpaperCacheTTL = 5 * time.Minute

type StoreUseCase interface {
	ListWallpapers(limit, offset int, category string) ([]*entity.Wallpaper, error)
	GetWallpaper(wallpaperID string) (*entity.Wallpaper, error)
	PurchaseWallpaper(userID, wallpaperID string) (bool, error)
	UnlockGenerated(userID, genID string) (bool, error)
}

type storeUseCase struct {
	wallpaperRepo persistent.WallpaperRepository
	ownershipRepo persistent.OwnershipRepository
	genRepo       persistent.GenerationRepository
	ledgerRepo    persistent.LedgerRepository
	redisClient   *redis.Client
	logger        *logger.Logger
}

func NewStoreUseCase(
	wallpaperRepo persistent.WallpaperRepository,
	ownershipRepo persistent.OwnershipRepository,
	genRepo persistent.GenerationRepository,
	ledgerRepo persistent.LedgerRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
) StoreUseCase {
	return &storeUseCase{
		wallpaperRepo: wallpaperRepo,
		ownershipRepo: ownershipRepo,
		genRepo:       genRepo,
		ledgerRepo:    ledgerRepo,
		redisClient:   redisClient,
		logger:        logger,
	}
}

func (uc *storeUseCase) ListWallpapers(limit, offset int, category string) ([]*entity.Wallpaper, error) {
	wallpapers, err := uc.wallpaperRepo.List(limit, offset, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallpapers: %w", err)
	}
	return wallpapers, nil
}

// GetWallpaper reads through a short-lived redis cache; the catalog
// changes rarely and is read on every store screen.
func (uc *storeUseCase) GetWallpaper(wallpaperID string) (*entity.Wallpaper, error) {
	ctx := context.Background()
	cacheKey := fmt.Sprintf("wallpaper:%s", wallpaperID)

	if uc.redisClient != nil {
		if cached, err := uc.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			var wallpaper entity.Wallpaper
			if err := json.Unmarshal([]byte(cached), &wallpaper); err == nil {
				return &wallpaper, nil
			}
		}
	}

	wallpaper, err := uc.wallpaperRepo.GetByID(wallpaperID)
	if err != nil {
		return nil, err
	}

	if uc.redisClient != nil {
		if data, err := json.Marshal(wallpaper); err == nil {
			uc.redisClient.Set(ctx, cacheKey, data, wallpaperCacheTTL)
		}
	}

	return wallpaper, nil
}

// PurchaseWallpaper charges the wallpaper's price and grants ownership.
// Already-owned items short-circuit before any charge.
func (uc *storeUseCase) PurchaseWallpaper(userID, wallpaperID string) (bool, error) {
	if wallpaperID == "" {
		return false, fmt.Errorf("%w: wallpaper id is required", entity.ErrInvalidArgument)
	}

	wallpaper, err := uc.wallpaperRepo.GetByID(wallpaperID)
	if err != nil {
		return false, err
	}

	owned, err := uc.ownershipRepo.Exists(userID, wallpaperID)
	if err != nil {
		return false, fmt.Errorf("failed to check ownership: %w", err)
	}
	if owned {
		uc.logger.Info("Wallpaper already owned: %s by %s", wallpaperID, userID)
		return true, nil
	}

	if _, err := uc.ledgerRepo.Debit(userID, wallpaper.Price, entity.ReasonUnlock, wallpaperID); err != nil {
		return false, err
	}

	ownership := &entity.Ownership{
		UserID:   userID,
		ItemType: entity.ItemTypeWallpaper,
		RefID:    wallpaperID,
		Source:   entity.SourcePurchase,
	}
	if err := uc.ownershipRepo.CreateWithSale(ownership, wallpaperID); err != nil {
		return false, fmt.Errorf("failed to record ownership: %w", err)
	}

	// Purchase mutates the sales counter, drop the cached copy.
	if uc.redisClient != nil {
		uc.redisClient.Del(context.Background(), fmt.Sprintf("wallpaper:%s", wallpaperID))
	}

	uc.logger.Info("Wallpaper purchased: %s by %s", wallpaperID, userID)
	return true, nil
}

// UnlockGenerated grants ownership of a finished generation to its owner.
// The generation was already paid for at request time, so no charge here;
// repeat calls return the existing grant.
func (uc *storeUseCase) UnlockGenerated(userID, genID string) (bool, error) {
	if genID == "" {
		return false, fmt.Errorf("%w: generation id is required", entity.ErrInvalidArgument)
	}

	gen, err := uc.genRepo.GetByID(genID)
	if err != nil {
		return false, err
	}
	if gen.UserID != userID {
		return false, entity.ErrPermissionDenied
	}
	if gen.Status != entity.GenerationSucceeded {
		return false, entity.ErrNotCompleted
	}

	owned, err := uc.ownershipRepo.Exists(userID, genID)
	if err != nil {
		return false, fmt.Errorf("failed to check ownership: %w", err)
	}
	if owned {
		uc.logger.Info("Generation already owned: %s", genID)
		return true, nil
	}

	ownership := &entity.Ownership{
		UserID:   userID,
		ItemType: entity.ItemTypeGeneration,
		RefID:    genID,
		Source:   entity.SourcePurchase,
	}
	if err := uc.ownershipRepo.Create(ownership); err != nil {
		return false, fmt.Errorf("failed to record ownership: %w", err)
	}

	uc.logger.Info("Generation unlocked: %s for %s", genID, userID)
	return true, nil
}
