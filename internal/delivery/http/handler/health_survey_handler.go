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

type HealthSurveyHandler struct {
	surveyUsecase usecase.HealthSurveyUsecase
	validator     *validator.CustomValidator
}

func NewHealthSurveyHandler(surveyUsecase usecase.HealthSurveyUsecase, validator *validator.CustomValidator) *HealthSurveyHandler {
	return &HealthSurveyHandler{
		surveyUsecase: surveyUsecase,
		validator:     validator,
	}
}

func (h *HealthSurveyHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveHealthSurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, updated, err := h.surveyUsecase.Save(r.Context(), &req, clientip.FromRequest(r))
	if err != nil {
		switch err {
		case usecase.ErrInvalidBirthDate:
			response.BadRequest(w, "Invalid birth date")
		case usecase.ErrSystolicNotAboveDiastolic:
			response.BadRequest(w, "Systolic must be greater than diastolic")
		default:
			response.InternalServerError(w, "Failed to save health survey")
		}
		return
	}

	message := "Health survey created successfully"
	if updated {
		message = "Health survey updated successfully"
	}
	response.Success(w, message, result)
}

func (h *HealthSurveyHandler) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	switch query.Get("type") {
	case "by_id":
		detail, err := h.surveyUsecase.GetByIDNumber(r.Context(), query.Get("id_number"))
		if err != nil {
			switch err {
			case usecase.ErrMissingIDNumber:
				response.BadRequest(w, "id_number is required")
			case usecase.ErrSurveyNotFound:
				response.NotFound(w, "Health survey not found")
			default:
				response.InternalServerError(w, "Failed to get health survey")
			}
			return
		}
		response.Success(w, "Health survey retrieved successfully", detail)

	case "stats":
		stats, err := h.surveyUsecase.GetStats(r.Context())
		if err != nil {
			response.InternalServerError(w, "Failed to get survey statistics")
			return
		}
		response.Success(w, "Survey statistics retrieved successfully", stats)

	case "by_city":
		items, err := h.surveyUsecase.GetByCity(r.Context(), query.Get("city"))
		if err != nil {
			if err == usecase.ErrMissingCity {
				response.BadRequest(w, "city is required")
				return
			}
			response.InternalServerError(w, "Failed to get surveys by city")
			return
		}
		response.Success(w, "Surveys retrieved successfully", items)

	case "all", "":
		list, err := h.surveyUsecase.GetAll(r.Context(), queryInt(query.Get("limit")), queryInt(query.Get("offset")))
		if err != nil {
			response.InternalServerError(w, "Failed to list health surveys")
			return
		}
		response.Success(w, "Health surveys retrieved successfully", list)

	default:
		response.BadRequest(w, "Unknown query type")
	}
}

// queryInt parses an optional numeric query parameter; empty or
// malformed values fall back to zero so the usecase defaults apply.
func queryInt(value string) int {
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
