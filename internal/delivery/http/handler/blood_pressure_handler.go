package handler

import (
	"encoding/json"
	"net/http"

	"community-health-api/internal/delivery/dto"
	"community-health-api/internal/usecase"
	"community-health-api/pkg/clientip"
	"community-health-api/pkg/response"
	"community-health-api/pkg/validator"
)

type BloodPressureHandler struct {
	bpUsecase usecase.BloodPressureUsecase
	validator *validator.CustomValidator
}

func NewBloodPressureHandler(bpUsecase usecase.BloodPressureUsecase, validator *validator.CustomValidator) *BloodPressureHandler {
	return &BloodPressureHandler{
		bpUsecase: bpUsecase,
		validator: validator,
	}
}

func (h *BloodPressureHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveBloodPressureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.bpUsecase.Save(r.Context(), &req, clientip.FromRequest(r))
	if err != nil {
		switch err {
		case usecase.ErrInvalidBirthDate:
			response.BadRequest(w, "Invalid birth date")
		case usecase.ErrSystolicNotAboveDiastolic:
			response.BadRequest(w, "Systolic must be greater than diastolic")
		default:
			response.InternalServerError(w, "Failed to save blood pressure reading")
		}
		return
	}

	response.Success(w, "Blood pressure reading saved successfully", result)
}
