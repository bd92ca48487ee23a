package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"community-health-api/internal/delivery/dto"
	"community-health-api/pkg/response"
	"community-health-api/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBloodPressureUsecase struct {
	mock.Mock
}

func (m *MockBloodPressureUsecase) Save(ctx context.Context, req *dto.SaveBloodPressureRequest, ipAddress string) (*dto.SaveBloodPressureResponse, error) {
	args := m.Called(ctx, req, ipAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SaveBloodPressureResponse), args.Error(1)
}

func TestBloodPressureSave_InvalidBody(t *testing.T) {
	uc := new(MockBloodPressureUsecase)
	h := NewBloodPressureHandler(uc, validator.NewValidator())

	r := httptest.NewRequest(http.MethodPost, "/api/v1/blood-pressures", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	h.Save(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestBloodPressureSave_ValidationFailsBeforeUsecase(t *testing.T) {
	uc := new(MockBloodPressureUsecase)
	h := NewBloodPressureHandler(uc, validator.NewValidator())

	// ID number too short and visit number not 4 digits.
	body := `{"idNumber":"A123","birthDate":"1985-03-20","cardDate":"2025-06-01","visitNumber":"12","systolicBP":120,"diastolicBP":80}`
	r := httptest.NewRequest(http.MethodPost, "/api/v1/blood-pressures", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Save(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Validation failed", resp.Message)
	uc.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestBloodPressureSave_AcceptsZeroLessReading(t *testing.T) {
	uc := new(MockBloodPressureUsecase)
	uc.On("Save", mock.Anything, mock.MatchedBy(func(req *dto.SaveBloodPressureRequest) bool {
		return *req.SystolicBP == 120 && *req.DiastolicBP == 80
	}), "203.0.113.7").Return(&dto.SaveBloodPressureResponse{
		PersonID: 1,
		BPID:     10,
		BPStatus: "血壓偏高",
	}, nil)

	h := NewBloodPressureHandler(uc, validator.NewValidator())

	body := `{"idNumber":"A123456789","birthDate":"1985-03-20","cardDate":"2025-06-01","visitNumber":"0001","systolicBP":120,"diastolicBP":80}`
	r := httptest.NewRequest(http.MethodPost, "/api/v1/blood-pressures", strings.NewReader(body))
	r.Header.Set("Client-IP", "203.0.113.7")
	w := httptest.NewRecorder()

	h.Save(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	uc.AssertExpectations(t)
}
