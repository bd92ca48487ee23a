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

type MetabolicHandler struct {
	metabolicUsecase usecase.MetabolicUsecase
	validator        *validator.CustomValidator
}

func NewMetabolicHandler(metabolicUsecase usecase.MetabolicUsecase, validator *validator.CustomValidator) *MetabolicHandler {
	return &MetabolicHandler{
		metabolicUsecase: metabolicUsecase,
		validator:        validator,
	}
}

func (h *MetabolicHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveMetabolicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.metabolicUsecase.Save(r.Context(), &req, clientip.FromRequest(r))
	if err != nil {
		switch err {
		case usecase.ErrInvalidBirthDate:
			response.BadRequest(w, "Invalid birth date")
		case usecase.ErrSystolicNotAboveDiastolic:
			response.BadRequest(w, "Systolic must be greater than diastolic")
		default:
			response.InternalServerError(w, "Failed to save metabolic screening")
		}
		return
	}

	response.Success(w, "Metabolic screening saved successfully", result)
}

func (h *MetabolicHandler) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	switch query.Get("type") {
	case "by_id":
		records, err := h.metabolicUsecase.GetByIDNumber(r.Context(), query.Get("id_number"))
		if err != nil {
			switch err {
			case usecase.ErrMissingIDNumber:
				response.BadRequest(w, "id_number is required")
			case usecase.ErrMetabolicNotFound:
				response.NotFound(w, "Metabolic screening not found")
			default:
				response.InternalServerError(w, "Failed to get metabolic screenings")
			}
			return
		}
		response.Success(w, "Metabolic screenings retrieved successfully", records)

	case "stats":
		stats, err := h.metabolicUsecase.GetStats(r.Context())
		if err != nil {
			response.InternalServerError(w, "Failed to get metabolic statistics")
			return
		}
		response.Success(w, "Metabolic statistics retrieved successfully", stats)

	case "risk_analysis":
		groups, err := h.metabolicUsecase.GetRiskAnalysis(r.Context(), query.Get("risk_type"))
		if err != nil {
			if err == usecase.ErrInvalidRiskType {
				response.BadRequest(w, "risk_type must be one of: smoking, betel_nut, exercise")
				return
			}
			response.InternalServerError(w, "Failed to get risk analysis")
			return
		}
		response.Success(w, "Risk analysis retrieved successfully", groups)

	case "recent":
		items, err := h.metabolicUsecase.GetRecent(r.Context(), queryInt(query.Get("limit")))
		if err != nil {
			response.InternalServerError(w, "Failed to get recent metabolic screenings")
			return
		}
		response.Success(w, "Recent metabolic screenings retrieved successfully", items)

	case "all", "":
		list, err := h.metabolicUsecase.GetAll(r.Context(), queryInt(query.Get("limit")), queryInt(query.Get("offset")))
		if err != nil {
			response.InternalServerError(w, "Failed to list metabolic screenings")
			return
		}
		response.Success(w, "Metabolic screenings retrieved successfully", list)

	default:
		response.BadRequest(w, "Unknown query type")
	}
}
