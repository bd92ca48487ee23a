package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"community-health-api/internal/delivery/dto"
	"community-health-api/internal/domain/entity"
	"community-health-api/internal/usecase"
	"community-health-api/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockLabTestUsecase struct {
	mock.Mock
}

func (m *MockLabTestUsecase) Save(ctx context.Context, req *dto.SaveLabTestRequest, ipAddress string) (*dto.SaveLabTestResponse, error) {
	args := m.Called(ctx, req, ipAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SaveLabTestResponse), args.Error(1)
}

func (m *MockLabTestUsecase) GetByIDNumber(ctx context.Context, idNumber string) ([]dto.LabTestDetailResponse, error) {
	args := m.Called(ctx, idNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.LabTestDetailResponse), args.Error(1)
}

func (m *MockLabTestUsecase) GetByTestID(ctx context.Context, testID uint) (*dto.LabTestDetailResponse, error) {
	args := m.Called(ctx, testID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LabTestDetailResponse), args.Error(1)
}

func (m *MockLabTestUsecase) GetStats(ctx context.Context) (*entity.LabTestStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LabTestStats), args.Error(1)
}

func (m *MockLabTestUsecase) GetByDoctor(ctx context.Context, doctorID string) ([]dto.LabTestSummaryItem, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.LabTestSummaryItem), args.Error(1)
}

func (m *MockLabTestUsecase) GetRecent(ctx context.Context, limit int) ([]dto.LabTestSummaryItem, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.LabTestSummaryItem), args.Error(1)
}

func (m *MockLabTestUsecase) GetAll(ctx context.Context, limit, offset int) (*dto.LabTestListResponse, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LabTestListResponse), args.Error(1)
}

func TestLabTestGet_DispatchesByType(t *testing.T) {
	t.Run("by_id reads id_number parameter", func(t *testing.T) {
		uc := new(MockLabTestUsecase)
		uc.On("GetByIDNumber", mock.Anything, "A123456789").Return([]dto.LabTestDetailResponse{{
			IDNumber: "A123456789",
		}}, nil)

		h := NewLabTestHandler(uc, validator.NewValidator())
		r := httptest.NewRequest(http.MethodGet, "/api/v1/lab-tests?type=by_id&id_number=A123456789", nil)
		w := httptest.NewRecorder()

		h.Get(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		uc.AssertExpectations(t)
	})

	t.Run("by_test_id reads test_id parameter", func(t *testing.T) {
		uc := new(MockLabTestUsecase)
		uc.On("GetByTestID", mock.Anything, uint(12)).Return(&dto.LabTestDetailResponse{TestID: 12}, nil)

		h := NewLabTestHandler(uc, validator.NewValidator())
		r := httptest.NewRequest(http.MethodGet, "/api/v1/lab-tests?type=by_test_id&test_id=12", nil)
		w := httptest.NewRecorder()

		h.Get(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		uc.AssertExpectations(t)
	})

	t.Run("by_test_id with malformed id", func(t *testing.T) {
		uc := new(MockLabTestUsecase)

		h := NewLabTestHandler(uc, validator.NewValidator())
		r := httptest.NewRequest(http.MethodGet, "/api/v1/lab-tests?type=by_test_id&test_id=abc", nil)
		w := httptest.NewRecorder()

		h.Get(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		uc.AssertNotCalled(t, "GetByTestID", mock.Anything, mock.Anything)
	})

	t.Run("by_doctor reads doctor_id parameter", func(t *testing.T) {
		uc := new(MockLabTestUsecase)
		uc.On("GetByDoctor", mock.Anything, "B987654321").Return([]dto.LabTestSummaryItem{}, nil)

		h := NewLabTestHandler(uc, validator.NewValidator())
		r := httptest.NewRequest(http.MethodGet, "/api/v1/lab-tests?type=by_doctor&doctor_id=B987654321", nil)
		w := httptest.NewRecorder()

		h.Get(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		uc.AssertExpectations(t)
	})

	t.Run("by_id not found", func(t *testing.T) {
		uc := new(MockLabTestUsecase)
		uc.On("GetByIDNumber", mock.Anything, "A123456789").Return(nil, usecase.ErrLabTestNotFound)

		h := NewLabTestHandler(uc, validator.NewValidator())
		r := httptest.NewRequest(http.MethodGet, "/api/v1/lab-tests?type=by_id&id_number=A123456789", nil)
		w := httptest.NewRecorder()

		h.Get(w, r)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
