package usecase

import (
	"context"
	"testing"

	"community-health-api/internal/delivery/dto"
	"community-health-api/internal/domain/entity"
	"community-health-api/pkg/vitals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validMetabolicRequest() *dto.SaveMetabolicRequest {
	height := 160.0
	weight := 62.0
	waist := 82.0
	systolic := 145
	diastolic := 92
	glucose := 110.0
	triglyceride := 160.0
	hdl := 48.0
	ldl := 130.0
	hba1c := 6.1
	cholesterol := 210.0

	return &dto.SaveMetabolicRequest{
		IDNumber:         "A123456789",
		BirthDate:        "1970-05-10",
		Name:             "李美麗",
		Gender:           "1",
		CaseDate:         "2025-06-01",
		Smoking:          "1",
		BetelNut:         "1",
		Exercise:         "2",
		CheckDate:        "2025-06-01",
		Height:           &height,
		Weight:           &weight,
		Waist:            &waist,
		SystolicBP:       &systolic,
		DiastolicBP:      &diastolic,
		BPSource:         "onsite",
		BPMedicine:       "no",
		SugarMedicine:    "no",
		LipidMedicine:    "no",
		FastingGlucose:   &glucose,
		Triglyceride:     &triglyceride,
		HDL:              &hdl,
		LDL:              &ldl,
		HbA1c:            &hba1c,
		TotalCholesterol: &cholesterol,
	}
}

func TestMetabolicSave_TranslatesGenderAndComputesBMI(t *testing.T) {
	db, sqlMock := newTestDB(t)
	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	person := &entity.Person{PersonID: 9, IDNumber: "A123456789"}

	resolver := new(MockPersonResolver)
	resolver.On("Resolve", mock.Anything, mock.MatchedBy(func(in PersonInput) bool {
		return in.Gender == "女" && in.Name == "李美麗"
	}), OverwriteAlways).Return(person, nil)

	metabolicRepo := new(MockMetabolicRepository)
	metabolicRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.MetabolicPrevention) bool {
		return s.Gender == "女" && s.BMI == 24.22 && s.PersonID == 9
	})).Return(nil)

	uc := NewMetabolicUsecase(db, testLogger(), resolver, metabolicRepo)
	result, err := uc.Save(context.Background(), validMetabolicRequest(), "203.0.113.7")

	require.NoError(t, err)
	assert.Equal(t, 24.22, result.BMI)
	assert.Equal(t, vitals.BMIOverweight, result.BMIStatus)
	assert.Equal(t, vitals.BPHypertension, result.BPStatus)
	resolver.AssertExpectations(t)
	metabolicRepo.AssertExpectations(t)
	require.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestMetabolicSave_RejectsSystolicNotAboveDiastolic(t *testing.T) {
	db, sqlMock := newTestDB(t)

	resolver := new(MockPersonResolver)
	metabolicRepo := new(MockMetabolicRepository)

	req := validMetabolicRequest()
	systolic := 90
	diastolic := 95
	req.SystolicBP = &systolic
	req.DiastolicBP = &diastolic

	uc := NewMetabolicUsecase(db, testLogger(), resolver, metabolicRepo)
	_, err := uc.Save(context.Background(), req, "203.0.113.7")

	assert.ErrorIs(t, err, ErrSystolicNotAboveDiastolic)
	resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything)
	require.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestMetabolicGetRiskAnalysis_RejectsUnknownRiskType(t *testing.T) {
	db, _ := newTestDB(t)

	metabolicRepo := new(MockMetabolicRepository)

	uc := NewMetabolicUsecase(db, testLogger(), new(MockPersonResolver), metabolicRepo)
	_, err := uc.GetRiskAnalysis(context.Background(), "drinking; DROP TABLE metabolic_prevention")

	assert.ErrorIs(t, err, ErrInvalidRiskType)
	metabolicRepo.AssertNotCalled(t, "RiskAnalysis", mock.Anything, mock.Anything)
}

func TestMetabolicGetRiskAnalysis_AllowsKnownRiskTypes(t *testing.T) {
	db, _ := newTestDB(t)

	metabolicRepo := new(MockMetabolicRepository)
	for _, riskType := range []string{"smoking", "betel_nut", "exercise"} {
		metabolicRepo.On("RiskAnalysis", mock.Anything, riskType).Return([]entity.MetabolicRiskGroup{}, nil)
	}

	uc := NewMetabolicUsecase(db, testLogger(), new(MockPersonResolver), metabolicRepo)
	for _, riskType := range []string{"smoking", "betel_nut", "exercise"} {
		_, err := uc.GetRiskAnalysis(context.Background(), riskType)
		require.NoError(t, err, riskType)
	}
	metabolicRepo.AssertExpectations(t)
}

func TestMetabolicGetByIDNumber_NotFound(t *testing.T) {
	db, _ := newTestDB(t)

	metabolicRepo := new(MockMetabolicRepository)
	metabolicRepo.On("FindByIDNumber", mock.Anything, "A123456789").Return([]entity.MetabolicPrevention{}, nil)

	uc := NewMetabolicUsecase(db, testLogger(), new(MockPersonResolver), metabolicRepo)
	_, err := uc.GetByIDNumber(context.Background(), "A123456789")

	assert.ErrorIs(t, err, ErrMetabolicNotFound)
}
