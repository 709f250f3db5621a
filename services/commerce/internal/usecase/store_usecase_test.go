package usecase

import (
	"testing"

	"wallpaperverse/pkg/logger"
	"wallpaperverse/services/commerce/internal/entity"
	"wallpaperverse/services/commerce/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockWallpaperRepository is a mock implementation of WallpaperRepository
type MockWallpaperRepository struct {
	mock.Mock
}

func (m *MockWallpaperRepository) GetByID(wallpaperID string) (*entity.Wallpaper, error) {
	args := m.Called(wallpaperID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Wallpaper), args.Error(1)
}

func (m *MockWallpaperRepository) List(limit, offset int, category string) ([]*entity.Wallpaper, error) {
	args := m.Called(limit, offset, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Wallpaper), args.Error(1)
}

var _ persistent.WallpaperRepository = (*MockWallpaperRepository)(nil)

// MockOwnershipRepository is a mock implementation of OwnershipRepository
type MockOwnershipRepository struct {
	mock.Mock
}

func (m *MockOwnershipRepository) Exists(userID, refID string) (bool, error) {
	args := m.Called(userID, refID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOwnershipRepository) Create(ownership *entity.Ownership) error {
	args := m.Called(ownership)
	return args.Error(0)
}

func (m *MockOwnershipRepository) CreateWithSale(ownership *entity.Ownership, wallpaperID string) error {
	args := m.Called(ownership, wallpaperID)
	return args.Error(0)
}

var _ persistent.OwnershipRepository = (*MockOwnershipRepository)(nil)

func newStoreUseCaseForTest(
	wallpaperRepo *MockWallpaperRepository,
	ownershipRepo *MockOwnershipRepository,
	genRepo *MockGenerationRepository,
	ledgerRepo *MockLedgerRepository,
) StoreUseCase {
	return NewStoreUseCase(wallpaperRepo, ownershipRepo, genRepo, ledgerRepo, nil, logger.New())
}

func TestPurchaseWallpaper_ChargesPriceOnce(t *testing.T) {
	wallpaperRepo := new(MockWallpaperRepository)
	ownershipRepo := new(MockOwnershipRepository)
	genRepo := new(MockGenerationRepository)
	ledgerRepo := new(MockLedgerRepository)
	uc := newStoreUseCaseForTest(wallpaperRepo, ownershipRepo, genRepo, ledgerRepo)

	wallpaperRepo.On("GetByID", "wp-1").Return(&entity.Wallpaper{ID: "wp-1", Price: 2}, nil)
	ownershipRepo.On("Exists", "user-123", "wp-1").Return(false, nil)
	ledgerRepo.On("Debit", "user-123", 2, entity.ReasonUnlock, "wp-1").Return(&entity.AuditEntry{}, nil)
	ownershipRepo.On("CreateWithSale", mock.MatchedBy(func(o *entity.Ownership) bool {
		return o.UserID == "user-123" && o.RefID == "wp-1" && o.ItemType == entity.ItemTypeWallpaper
	}), "wp-1").Return(nil)

	owned, err := uc.PurchaseWallpaper("user-123", "wp-1")

	assert.NoError(t, err)
	assert.True(t, owned)
	ledgerRepo.AssertExpectations(t)
	ownershipRepo.AssertExpectations(t)
}

func TestPurchaseWallpaper_AlreadyOwnedSkipsCharge(t *testing.T) {
	wallpaperRepo := new(MockWallpaperRepository)
	ownershipRepo := new(MockOwnershipRepository)
	genRepo := new(MockGenerationRepository)
	ledgerRepo := new(MockLedgerRepository)
	uc := newStoreUseCaseForTest(wallpaperRepo, ownershipRepo, genRepo, ledgerRepo)

	wallpaperRepo.On("GetByID", "wp-1").Return(&entity.Wallpaper{ID: "wp-1", Price: 2}, nil)
	ownershipRepo.On("Exists", "user-123", "wp-1").Return(true, nil)

	owned, err := uc.PurchaseWallpaper("user-123", "wp-1")

	assert.NoError(t, err)
	assert.True(t, owned)
	ledgerRepo.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	ownershipRepo.AssertNotCalled(t, "CreateWithSale", mock.Anything, mock.Anything)
}

func TestPurchaseWallpaper_InsufficientCredits(t *testing.T) {
	wallpaperRepo := new(MockWallpaperRepository)
	ownershipRepo := new(MockOwnershipRepository)
	genRepo := new(MockGenerationRepository)
	ledgerRepo := new(MockLedgerRepository)
	uc := newStoreUseCaseForTest(wallpaperRepo, ownershipRepo, genRepo, ledgerRepo)

	wallpaperRepo.On("GetByID", "wp-1").Return(&entity.Wallpaper{ID: "wp-1", Price: 5}, nil)
	ownershipRepo.On("Exists", "user-123", "wp-1").Return(false, nil)
	ledgerRepo.On("Debit", "user-123", 5, entity.ReasonUnlock, "wp-1").Return(nil, entity.ErrInsufficientCredits)

	_, err := uc.PurchaseWallpaper("user-123", "wp-1")

	assert.ErrorIs(t, err, entity.ErrInsufficientCredits)
	ownershipRepo.AssertNotCalled(t, "CreateWithSale", mock.Anything, mock.Anything)
}

func TestPurchaseWallpaper_NotFound(t *testing.T) {
	wallpaperRepo := new(MockWallpaperRepository)
	ownershipRepo := new(MockOwnershipRepository)
	genRepo := new(MockGenerationRepository)
	ledgerRepo := new(MockLedgerRepository)
	uc := newStoreUseCaseForTest(wallpaperRepo, ownershipRepo, genRepo, ledgerRepo)

	wallpaperRepo.On("GetByID", "wp-missing").Return(nil, entity.ErrNotFound)

	_, err := uc.PurchaseWallpaper("user-123", "wp-missing")

	assert.ErrorIs(t, err, entity.ErrNotFound)
	ledgerRepo.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUnlockGenerated_Success(t *testing.T) {
	wallpaperRepo := new(MockWallpaperRepository)
	ownershipRepo := new(MockOwnershipRepository)
	genRepo := new(MockGenerationRepository)
	ledgerRepo := new(MockLedgerRepository)
	uc := newStoreUseCaseForTest(wallpaperRepo, ownershipRepo, genRepo, ledgerRepo)

	genRepo.On("GetByID", "gen-1").Return(&entity.Generation{
		ID:     "gen-1",
		UserID: "user-123",
		Status: entity.GenerationSucceeded,
	}, nil)
	ownershipRepo.On("Exists", "user-123", "gen-1").Return(false, nil)
	ownershipRepo.On("Create", mock.MatchedBy(func(o *entity.Ownership) bool {
		return o.RefID == "gen-1" && o.ItemType == entity.ItemTypeGeneration
	})).Return(nil)

	owned, err := uc.UnlockGenerated("user-123", "gen-1")

	assert.NoError(t, err)
	assert.True(t, owned)

	// The generation was paid for at request time, unlock is free.
	ledgerRepo.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	ownershipRepo.AssertExpectations(t)
}

func TestUnlockGenerated_NotOwner(t *testing.T) {
	wallpaperRepo := new(MockWallpaperRepository)
	ownershipRepo := new(MockOwnershipRepository)
	genRepo := new(MockGenerationRepository)
	ledgerRepo := new(MockLedgerRepository)
	uc := newStoreUseCaseForTest(wallpaperRepo, ownershipRepo, genRepo, ledgerRepo)

	genRepo.On("GetByID", "gen-1").Return(&entity.Generation{
		ID:     "gen-1",
		UserID: "user-123",
		Status: entity.GenerationSucceeded,
	}, nil)

	_, err := uc.UnlockGenerated("intruder", "gen-1")

	assert.ErrorIs(t, err, entity.ErrPermissionDenied)
	ownershipRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUnlockGenerated_NotCompleted(t *testing.T) {
	wallpaperRepo := new(MockWallpaperRepository)
	ownershipRepo := new(MockOwnershipRepository)
	genRepo := new(MockGenerationRepository)
	ledgerRepo := new(MockLedgerRepository)
	uc := newStoreUseCaseForTest(wallpaperRepo, ownershipRepo, genRepo, ledgerRepo)

	for _, status := range []entity.GenerationStatus{
		entity.GenerationQueued,
		entity.GenerationRunning,
		entity.GenerationFailed,
	} {
		genRepo.On("GetByID", "gen-1").Return(&entity.Generation{
			ID:     "gen-1",
			UserID: "user-123",
			Status: status,
		}, nil).Once()

		_, err := uc.UnlockGenerated("user-123", "gen-1")
		assert.ErrorIs(t, err, entity.ErrNotCompleted)
	}

	ownershipRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUnlockGenerated_AlreadyOwned(t *testing.T) {
	wallpaperRepo := new(MockWallpaperRepository)
	ownershipRepo := new(MockOwnershipRepository)
	genRepo := new(MockGenerationRepository)
	ledgerRepo := new(MockLedgerRepository)
	uc := newStoreUseCaseForTest(wallpaperRepo, ownershipRepo, genRepo, ledgerRepo)

	genRepo.On("GetByID", "gen-1").Return(&entity.Generation{
		ID:     "gen-1",
		UserID: "user-123",
		Status: entity.GenerationSucceeded,
	}, nil)
	ownershipRepo.On("Exists", "user-123", "gen-1").Return(true, nil)

	owned, err := uc.UnlockGenerated("user-123", "gen-1")

	assert.NoError(t, err)
	assert.True(t, owned)
	ownershipRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestListWallpapers_PassesFilter(t *testing.T) {
	wallpaperRepo := new(MockWallpaperRepository)
	ownershipRepo := new(MockOwnershipRepository)
	genRepo := new(MockGenerationRepository)
	ledgerRepo := new(MockLedgerRepository)
	uc := newStoreUseCaseForTest(wallpaperRepo, ownershipRepo, genRepo, ledgerRepo)

	wallpaperRepo.On("List", 10, 0, "nature").Return([]*entity.Wallpaper{{ID: "wp-1"}}, nil)

	wallpapers, err := uc.ListWallpapers(10, 0, "nature")

	assert.NoError(t, err)
	assert.Equal(t, 1, len(wallpapers))
	wallpaperRepo.AssertExpectations(t)
}
