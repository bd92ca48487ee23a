package usecase

import (
	"context"

	"community-health-api/internal/converter"
	"community-health-api/internal/delivery/dto"
	"community-health-api/internal/domain/entity"
	"community-health-api/internal/domain/repository"
	"community-health-api/pkg/vitals"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// genderLabels translates the form's 0/1 gender code to the stored
// label.
var genderLabels = map[string]string{
	"0": "男",
	"1": "女",
}

// validRiskTypes mirrors the grouped-query allow-list; anything else
// is rejected before a repository call is made.
var validRiskTypes = map[string]bool{
	"smoking":   true,
	"betel_nut": true,
	"exercise":  true,
}

type MetabolicUsecase interface {
	Save(ctx context.Context, req *dto.SaveMetabolicRequest, ipAddress string) (*dto.SaveMetabolicResponse, error)
	GetByIDNumber(ctx context.Context, idNumber string) ([]dto.MetabolicRecordResponse, error)
	GetStats(ctx context.Context) (*entity.MetabolicStats, error)
	GetRiskAnalysis(ctx context.Context, riskType string) ([]entity.MetabolicRiskGroup, error)
	GetRecent(ctx context.Context, limit int) ([]dto.MetabolicRecentItem, error)
	GetAll(ctx context.Context, limit, offset int) (*dto.MetabolicListResponse, error)
}

type metabolicUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	personResolver PersonResolver
	metabolicRepo  repository.MetabolicRepository
}

func NewMetabolicUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	personResolver PersonResolver,
	metabolicRepo repository.MetabolicRepository,
) MetabolicUsecase {
	return &metabolicUsecase{
		db:             db,
		log:            log,
		personResolver: personResolver,
		metabolicRepo:  metabolicRepo,
	}
}

func (u *metabolicUsecase) Save(ctx context.Context, req *dto.SaveMetabolicRequest, ipAddress string) (*dto.SaveMetabolicResponse, error) {
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, err
	}
	if *req.SystolicBP <= *req.DiastolicBP {
		return nil, ErrSystolicNotAboveDiastolic
	}

	gender := genderLabels[req.Gender]

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	person, err := u.personResolver.Resolve(tx, PersonInput{
		IDNumber:  req.IDNumber,
		Name:      req.Name,
		BirthDate: birthDate,
		Gender:    gender,
	}, OverwriteAlways)
	if err != nil {
		u.log.Warnf("Failed to resolve person: %+v", err)
		return nil, err
	}

	bmi := vitals.BMI(*req.Weight, *req.Height)

	screening := &entity.MetabolicPrevention{
		PersonID:             person.PersonID,
		IDNumber:             req.IDNumber,
		BirthDate:            birthDate,
		Name:                 req.Name,
		Gender:               gender,
		CollectionDate:       req.CaseDate,
		RiskSmoking:          req.Smoking,
		RiskBetelNut:         req.BetelNut,
		RiskExercise:         req.Exercise,
		AccompanyingDiseases: datatypes.NewJSONSlice(req.Diseases),
		DiseaseOther:         optional(req.DiseaseOther),
		ExaminationDate:      req.CheckDate,
		Height:               *req.Height,
		Weight:               *req.Weight,
		Waist:                *req.Waist,
		SystolicBP:           *req.SystolicBP,
		DiastolicBP:          *req.DiastolicBP,
		BMI:                  bmi,
		BPSource:             req.BPSource,
		AntihypertensiveDrug: req.BPMedicine,
		HypoglycemicDrug:     req.SugarMedicine,
		LipidLoweringDrug:    req.LipidMedicine,
		FastingGlucose:       *req.FastingGlucose,
		Triglyceride:         *req.Triglyceride,
		HDLCholesterol:       *req.HDL,
		LDLCholesterol:       *req.LDL,
		HbA1c:                *req.HbA1c,
		TotalCholesterol:     *req.TotalCholesterol,
		IPAddress:            ipAddress,
	}
	if err := u.metabolicRepo.Create(tx, screening); err != nil {
		u.log.Warnf("Failed to create metabolic screening: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.SaveMetabolicResponse{
		PersonID:    person.PersonID,
		MetabolicID: screening.MetabolicID,
		BMI:         bmi,
		BMIStatus:   vitals.BMIStatus(bmi),
		BPStatus:    vitals.BloodPressureStatus(screening.SystolicBP, screening.DiastolicBP),
	}, nil
}

func (u *metabolicUsecase) GetByIDNumber(ctx context.Context, idNumber string) ([]dto.MetabolicRecordResponse, error) {
	if idNumber == "" {
		return nil, ErrMissingIDNumber
	}

	screenings, err := u.metabolicRepo.FindByIDNumber(u.db.WithContext(ctx), idNumber)
	if err != nil {
		u.log.Warnf("Failed to find metabolic screenings: %+v", err)
		return nil, err
	}
	if len(screenings) == 0 {
		return nil, ErrMetabolicNotFound
	}

	return converter.MetabolicsToRecordResponses(screenings), nil
}

func (u *metabolicUsecase) GetStats(ctx context.Context) (*entity.MetabolicStats, error) {
	stats, err := u.metabolicRepo.Stats(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to compute metabolic stats: %+v", err)
		return nil, err
	}
	return stats, nil
}

func (u *metabolicUsecase) GetRiskAnalysis(ctx context.Context, riskType string) ([]entity.MetabolicRiskGroup, error) {
	if !validRiskTypes[riskType] {
		return nil, ErrInvalidRiskType
	}

	groups, err := u.metabolicRepo.RiskAnalysis(u.db.WithContext(ctx), riskType)
	if err != nil {
		u.log.Warnf("Failed to compute risk analysis: %+v", err)
		return nil, err
	}
	return groups, nil
}

func (u *metabolicUsecase) GetRecent(ctx context.Context, limit int) ([]dto.MetabolicRecentItem, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	screenings, err := u.metabolicRepo.FindRecent(u.db.WithContext(ctx), limit)
	if err != nil {
		u.log.Warnf("Failed to find recent metabolic screenings: %+v", err)
		return nil, err
	}

	return converter.MetabolicsToRecentItems(screenings), nil
}

func (u *metabolicUsecase) GetAll(ctx context.Context, limit, offset int) (*dto.MetabolicListResponse, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	db := u.db.WithContext(ctx)
	screenings, err := u.metabolicRepo.FindAll(db, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list metabolic screenings: %+v", err)
		return nil, err
	}

	total, err := u.metabolicRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count metabolic screenings: %+v", err)
		return nil, err
	}

	return &dto.MetabolicListResponse{
		Items:  converter.MetabolicsToListItems(screenings),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
