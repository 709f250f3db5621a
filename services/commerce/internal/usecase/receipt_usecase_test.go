package usecase

import (
	"context"
	"testing"

	"wallpaperverse/pkg/logger"
	"wallpaperverse/services/commerce/internal/entity"
	"wallpaperverse/services/commerce/internal/repo/persistent"
	"wallpaperverse/services/commerce/internal/storeclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReceiptRepository is a mock implementation of ReceiptRepository
type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) FindByTransaction(userID, transactionID string) (*entity.Receipt, error) {
	args := m.Called(userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) RecordGrant(receipt *entity.Receipt) error {
	args := m.Called(receipt)
	return args.Error(0)
}

var _ persistent.ReceiptRepository = (*MockReceiptRepository)(nil)

// MockValidator is a mock implementation of storeclient.Validator
type MockValidator struct {
	mock.Mock
}

func (m *MockValidator) Validate(ctx context.Context, raw, platform string) (*storeclient.Result, error) {
	args := m.Called(ctx, raw, platform)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storeclient.Result), args.Error(1)
}

var _ storeclient.Validator = (*MockValidator)(nil)

func TestValidateReceipt_GrantsCredits(t *testing.T) {
	mockRepo := new(MockReceiptRepository)
	mockValidator := new(MockValidator)
	uc := NewReceiptUseCase(mockRepo, mockValidator, logger.New())

	mockValidator.On("Validate", mock.Anything, "receipt-blob", "ios").Return(&storeclient.Result{
		Validated:     true,
		ProductID:     "credits_20",
		TransactionID: "txn-1",
	}, nil)
	mockRepo.On("FindByTransaction", "user-123", "txn-1").Return(nil, entity.ErrNotFound)
	mockRepo.On("RecordGrant", mock.MatchedBy(func(r *entity.Receipt) bool {
		return r.UserID == "user-123" &&
			r.Store == "appstore" &&
			r.TransactionID == "txn-1" &&
			r.ProductType == entity.ProductConsumable &&
			r.CreditsGranted == 20
	})).Return(nil)

	receipt, err := uc.ValidateReceipt(context.Background(), "user-123", "receipt-blob", "ios")

	assert.NoError(t, err)
	assert.True(t, receipt.Validated)
	assert.Equal(t, 20, receipt.CreditsGranted)

	mockRepo.AssertExpectations(t)
	mockValidator.AssertExpectations(t)
}

func TestValidateReceipt_ReplayIsIdempotent(t *testing.T) {
	mockRepo := new(MockReceiptRepository)
	mockValidator := new(MockValidator)
	uc := NewReceiptUseCase(mockRepo, mockValidator, logger.New())

	mockValidator.On("Validate", mock.Anything, "receipt-blob", "ios").Return(&storeclient.Result{
		Validated:     true,
		ProductID:     "credits_20",
		TransactionID: "txn-1",
	}, nil)
	stored := &entity.Receipt{
		UserID:         "user-123",
		TransactionID:  "txn-1",
		Validated:      true,
		CreditsGranted: 20,
	}
	mockRepo.On("FindByTransaction", "user-123", "txn-1").Return(stored, nil)

	receipt, err := uc.ValidateReceipt(context.Background(), "user-123", "receipt-blob", "ios")

	assert.NoError(t, err)
	assert.Equal(t, stored, receipt)

	// Replays must never grant twice.
	mockRepo.AssertNotCalled(t, "RecordGrant", mock.Anything)
}

func TestValidateReceipt_StoreRejects(t *testing.T) {
	mockRepo := new(MockReceiptRepository)
	mockValidator := new(MockValidator)
	uc := NewReceiptUseCase(mockRepo, mockValidator, logger.New())

	mockValidator.On("Validate", mock.Anything, "garbage", "android").Return(&storeclient.Result{
		Validated: false,
	}, nil)

	_, err := uc.ValidateReceipt(context.Background(), "user-123", "garbage", "android")

	assert.ErrorIs(t, err, entity.ErrReceiptInvalid)
	mockRepo.AssertNotCalled(t, "RecordGrant", mock.Anything)
}

func TestValidateReceipt_UnknownProductGrantsNothing(t *testing.T) {
	mockRepo := new(MockReceiptRepository)
	mockValidator := new(MockValidator)
	uc := NewReceiptUseCase(mockRepo, mockValidator, logger.New())

	mockValidator.On("Validate", mock.Anything, "receipt-blob", "android").Return(&storeclient.Result{
		Validated:     true,
		ProductID:     "credits_9000",
		TransactionID: "txn-2",
	}, nil)
	mockRepo.On("FindByTransaction", "user-123", "txn-2").Return(nil, entity.ErrNotFound)
	mockRepo.On("RecordGrant", mock.MatchedBy(func(r *entity.Receipt) bool {
		return r.Store == "play" && r.CreditsGranted == 0
	})).Return(nil)

	receipt, err := uc.ValidateReceipt(context.Background(), "user-123", "receipt-blob", "android")

	assert.NoError(t, err)
	assert.Equal(t, 0, receipt.CreditsGranted)
	mockRepo.AssertExpectations(t)
}

func TestValidateReceipt_SubscriptionProductType(t *testing.T) {
	mockRepo := new(MockReceiptRepository)
	mockValidator := new(MockValidator)
	uc := NewReceiptUseCase(mockRepo, mockValidator, logger.New())

	mockValidator.On("Validate", mock.Anything, "receipt-blob", "ios").Return(&storeclient.Result{
		Validated:     true,
		ProductID:     "sub_monthly_plus",
		TransactionID: "txn-3",
	}, nil)
	mockRepo.On("FindByTransaction", "user-123", "txn-3").Return(nil, entity.ErrNotFound)
	mockRepo.On("RecordGrant", mock.MatchedBy(func(r *entity.Receipt) bool {
		return r.ProductType == entity.ProductSubscription && r.CreditsGranted == 50
	})).Return(nil)

	receipt, err := uc.ValidateReceipt(context.Background(), "user-123", "receipt-blob", "ios")

	assert.NoError(t, err)
	assert.Equal(t, entity.ProductSubscription, receipt.ProductType)
	mockRepo.AssertExpectations(t)
}

func TestValidateReceipt_BadPlatform(t *testing.T) {
	mockRepo := new(MockReceiptRepository)
	mockValidator := new(MockValidator)
	uc := NewReceiptUseCase(mockRepo, mockValidator, logger.New())

	_, err := uc.ValidateReceipt(context.Background(), "user-123", "receipt-blob", "windows")

	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	mockValidator.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductCredits(t *testing.T) {
	assert.Equal(t, 5, entity.ProductCredits("credits_5"))
	assert.Equal(t, 20, entity.ProductCredits("credits_20"))
	assert.Equal(t, 100, entity.ProductCredits("credits_100"))
	assert.Equal(t, 50, entity.ProductCredits("sub_monthly_plus"))
	assert.Equal(t, 0, entity.ProductCredits("credits_9000"))
}
