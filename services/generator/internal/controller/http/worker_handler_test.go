package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wallpaperverse/pkg/logger"
	"wallpaperverse/services/generator/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockWorkerUseCase is a mock implementation of WorkerUseCase
type MockWorkerUseCase struct {
	mock.Mock
}

func (m *MockWorkerUseCase) ProcessBatch(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

var _ usecase.WorkerUseCase = (*MockWorkerUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestRunBatch_Success(t *testing.T) {
	mockUseCase := new(MockWorkerUseCase)
	logger := logger.New()
	handler := NewWorkerHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/worker/run", handler.RunBatch)

	mockUseCase.On("ProcessBatch", mock.Anything).Return(3, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/worker/run", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(3), response["processed"])

	mockUseCase.AssertExpectations(t)
}

func TestRunBatch_Failure(t *testing.T) {
	mockUseCase := new(MockWorkerUseCase)
	logger := logger.New()
	handler := NewWorkerHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/worker/run", handler.RunBatch)

	mockUseCase.On("ProcessBatch", mock.Anything).Return(0, errors.New("db down"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/worker/run", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockUseCase.AssertExpectations(t)
}
