package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"community-health-api/internal/delivery/dto"
	"community-health-api/internal/usecase"
	"community-health-api/pkg/clientip"
	"community-health-api/pkg/response"
	"community-health-api/pkg/validator"
)

type LabTestHandler struct {
	labTestUsecase usecase.LabTestUsecase
	validator      *validator.CustomValidator
}

func NewLabTestHandler(labTestUsecase usecase.LabTestUsecase, validator *validator.CustomValidator) *LabTestHandler {
	return &LabTestHandler{
		labTestUsecase: labTestUsecase,
		validator:      validator,
	}
}

func (h *LabTestHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveLabTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.labTestUsecase.Save(r.Context(), &req, clientip.FromRequest(r))
	if err != nil {
		switch err {
		case usecase.ErrInvalidBirthDate:
			response.BadRequest(w, "Invalid birth date")
		case usecase.ErrPersonNotFound:
			response.NotFound(w, "Person not found, submit a health survey first")
		default:
			response.InternalServerError(w, "Failed to save lab test")
		}
		return
	}

	response.Success(w, "Lab test saved successfully", result)
}

func (h *LabTestHandler) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	switch query.Get("type") {
	case "by_id":
		tests, err := h.labTestUsecase.GetByIDNumber(r.Context(), query.Get("id_number"))
		if err != nil {
			switch err {
			case usecase.ErrMissingIDNumber:
				response.BadRequest(w, "id_number is required")
			case usecase.ErrLabTestNotFound:
				response.NotFound(w, "Lab test not found")
			default:
				response.InternalServerError(w, "Failed to get lab tests")
			}
			return
		}
		response.Success(w, "Lab tests retrieved successfully", tests)

	case "by_test_id":
		testID, err := strconv.ParseUint(query.Get("test_id"), 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid test ID")
			return
		}
		test, err := h.labTestUsecase.GetByTestID(r.Context(), uint(testID))
		if err != nil {
			switch err {
			case usecase.ErrMissingTestID:
				response.BadRequest(w, "test_id is required")
			case usecase.ErrLabTestNotFound:
				response.NotFound(w, "Lab test not found")
			default:
				response.InternalServerError(w, "Failed to get lab test")
			}
			return
		}
		response.Success(w, "Lab test retrieved successfully", test)

	case "stats":
		stats, err := h.labTestUsecase.GetStats(r.Context())
		if err != nil {
			response.InternalServerError(w, "Failed to get lab test statistics")
			return
		}
		response.Success(w, "Lab test statistics retrieved successfully", stats)

	case "by_doctor":
		items, err := h.labTestUsecase.GetByDoctor(r.Context(), query.Get("doctor_id"))
		if err != nil {
			if err == usecase.ErrMissingDoctorID {
				response.BadRequest(w, "doctor_id is required")
				return
			}
			response.InternalServerError(w, "Failed to get lab tests by doctor")
			return
		}
		response.Success(w, "Lab tests retrieved successfully", items)

	case "recent":
		items, err := h.labTestUsecase.GetRecent(r.Context(), queryInt(query.Get("limit")))
		if err != nil {
			response.InternalServerError(w, "Failed to get recent lab tests")
			return
		}
		response.Success(w, "Recent lab tests retrieved successfully", items)

	case "all", "":
		list, err := h.labTestUsecase.GetAll(r.Context(), queryInt(query.Get("limit")), queryInt(query.Get("offset")))
		if err != nil {
			response.InternalServerError(w, "Failed to list lab tests")
			return
		}
		response.Success(w, "Lab tests retrieved successfully", list)

	default:
		response.BadRequest(w, "Unknown query type")
	}
}
