package usecase

import (
	"context"

	"community-health-api/internal/converter"
	"community-health-api/internal/delivery/dto"
	"community-health-api/internal/domain/entity"
	"community-health-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultListLimit   = 50
	maxRecentLimit     = 100
	defaultRecentLimit = 10
)

type HealthSurveyUsecase interface {
	// Save upserts the survey for the submitted person. The returned
	// bool reports whether an existing survey was overwritten.
	Save(ctx context.Context, req *dto.SaveHealthSurveyRequest, ipAddress string) (*dto.SaveHealthSurveyResponse, bool, error)
	GetByIDNumber(ctx context.Context, idNumber string) (*dto.HealthSurveyDetailResponse, error)
	GetStats(ctx context.Context) (*entity.HealthSurveyStats, error)
	GetByCity(ctx context.Context, city string) ([]dto.HealthSurveyCityItem, error)
	GetAll(ctx context.Context, limit, offset int) (*dto.HealthSurveyListResponse, error)
}

type healthSurveyUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	personResolver PersonResolver
	surveyRepo     repository.HealthSurveyRepository
}

func NewHealthSurveyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	personResolver PersonResolver,
	surveyRepo repository.HealthSurveyRepository,
) HealthSurveyUsecase {
	return &healthSurveyUsecase{
		db:             db,
		log:            log,
		personResolver: personResolver,
		surveyRepo:     surveyRepo,
	}
}

func (u *healthSurveyUsecase) Save(ctx context.Context, req *dto.SaveHealthSurveyRequest, ipAddress string) (*dto.SaveHealthSurveyResponse, bool, error) {
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, false, err
	}
	if *req.SystolicBP <= *req.DiastolicBP {
		return nil, false, ErrSystolicNotAboveDiastolic
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	person, err := u.personResolver.Resolve(tx, PersonInput{
		IDNumber:  req.IDNumber,
		Name:      req.Name,
		BirthDate: birthDate,
		Gender:    req.Gender,
	}, OverwriteAlways)
	if err != nil {
		u.log.Warnf("Failed to resolve person: %+v", err)
		return nil, false, err
	}

	existing, err := u.surveyRepo.FindByPersonID(tx, person.PersonID)
	if err != nil {
		u.log.Warnf("Failed to look up existing survey: %+v", err)
		return nil, false, err
	}

	survey := &entity.HealthSurvey{
		PersonID:             person.PersonID,
		Employment:           req.Employment,
		EmploymentOther:      optional(req.EmploymentOther),
		Caregiver:            req.Caregiver,
		CaregiverOther:       optional(req.CaregiverOther),
		City:                 req.City,
		District:             req.District,
		FamilyLifeCycle:      req.FamilyLifeCycle,
		FamilyLifeCycleOther: optional(req.FamilyLifeCycleOther),
		ChronicDiseases:      datatypes.NewJSONSlice(req.ChronicDiseaseList),
		ChronicDiseaseOther:  optional(req.ChronicDiseaseOther),
		Medications:          datatypes.NewJSONSlice(req.MedicationList),
		MedicationOther:      optional(req.MedicationOther),
		FoodAllergy:          optional(req.FoodAllergy),
		DrugAllergy:          optional(req.DrugAllergy),
		Smoking:              optional(req.Smoking),
		Drinking:             optional(req.Drinking),
		BetelNut:             optional(req.BetelNut),
		Height:               *req.Height,
		Weight:               *req.Weight,
		SystolicBP:           *req.SystolicBP,
		DiastolicBP:          *req.DiastolicBP,
		Waist:                *req.Waist,
		Pulse:                *req.Pulse,
		IPAddress:            ipAddress,
	}

	updated := existing != nil
	if updated {
		survey.SurveyID = existing.SurveyID
		survey.SubmittedAt = existing.SubmittedAt
		if err := u.surveyRepo.Update(tx, survey); err != nil {
			u.log.Warnf("Failed to update health survey: %+v", err)
			return nil, false, err
		}
	} else {
		if err := u.surveyRepo.Create(tx, survey); err != nil {
			u.log.Warnf("Failed to create health survey: %+v", err)
			return nil, false, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, false, err
	}

	return &dto.SaveHealthSurveyResponse{
		PersonID: person.PersonID,
		SurveyID: survey.SurveyID,
	}, updated, nil
}

func (u *healthSurveyUsecase) GetByIDNumber(ctx context.Context, idNumber string) (*dto.HealthSurveyDetailResponse, error) {
	if idNumber == "" {
		return nil, ErrMissingIDNumber
	}

	survey, err := u.surveyRepo.FindDetailByIDNumber(u.db.WithContext(ctx), idNumber)
	if err != nil {
		u.log.Warnf("Failed to find health survey: %+v", err)
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}

	return converter.HealthSurveyToDetailResponse(survey), nil
}

func (u *healthSurveyUsecase) GetStats(ctx context.Context) (*entity.HealthSurveyStats, error) {
	stats, err := u.surveyRepo.Stats(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to compute survey stats: %+v", err)
		return nil, err
	}
	return stats, nil
}

func (u *healthSurveyUsecase) GetByCity(ctx context.Context, city string) ([]dto.HealthSurveyCityItem, error) {
	if city == "" {
		return nil, ErrMissingCity
	}

	surveys, err := u.surveyRepo.FindByCity(u.db.WithContext(ctx), city)
	if err != nil {
		u.log.Warnf("Failed to find surveys by city: %+v", err)
		return nil, err
	}

	return converter.HealthSurveysToCityItems(surveys), nil
}

func (u *healthSurveyUsecase) GetAll(ctx context.Context, limit, offset int) (*dto.HealthSurveyListResponse, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	db := u.db.WithContext(ctx)
	surveys, err := u.surveyRepo.FindAll(db, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list surveys: %+v", err)
		return nil, err
	}

	total, err := u.surveyRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count surveys: %+v", err)
		return nil, err
	}

	return &dto.HealthSurveyListResponse{
		Items:  converter.HealthSurveysToListItems(surveys),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// optional maps an empty form value to NULL.
func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
