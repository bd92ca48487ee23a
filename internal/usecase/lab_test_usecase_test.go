package usecase

import (
	"context"
	"testing"

	"community-health-api/internal/delivery/dto"
	"community-health-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validLabTestRequest() *dto.SaveLabTestRequest {
	return &dto.SaveLabTestRequest{
		IDNumber:    "A123456789",
		BirthDate:   "1985-03-20",
		CardDate:    "2025-06-01",
		VisitNumber: "0001",
		DoctorID:    "B987654321",
	}
}

func TestLabTestSave_RejectsUnknownPerson(t *testing.T) {
	db, sqlMock := newTestDB(t)
	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	personRepo := new(MockPersonRepository)
	personRepo.On("FindByIDNumber", mock.Anything, "A123456789").Return(nil, nil)

	labTestRepo := new(MockLabTestRepository)

	uc := NewLabTestUsecase(db, testLogger(), personRepo, labTestRepo)
	_, err := uc.Save(context.Background(), validLabTestRequest(), "203.0.113.7")

	assert.ErrorIs(t, err, ErrPersonNotFound)
	labTestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	require.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestLabTestSave_EmptyPanelsProduceNoChildRows(t *testing.T) {
	db, sqlMock := newTestDB(t)
	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	person := &entity.Person{PersonID: 3, IDNumber: "A123456789"}

	personRepo := new(MockPersonRepository)
	personRepo.On("FindByIDNumber", mock.Anything, "A123456789").Return(person, nil)

	labTestRepo := new(MockLabTestRepository)
	labTestRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	req := validLabTestRequest()
	// A fully blank row on the form must be skipped, not stored.
	req.SingleTests = []dto.SingleTestInput{{TestCode: "", Result: ""}}

	uc := NewLabTestUsecase(db, testLogger(), personRepo, labTestRepo)
	result, err := uc.Save(context.Background(), req, "203.0.113.7")

	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalItems)
	assert.Equal(t, 0, result.SingleTestCount)
	assert.Equal(t, 0, result.UrineTestItems)
	assert.Equal(t, 0, result.BloodTestItems)
	labTestRepo.AssertNotCalled(t, "CreateSingleItem", mock.Anything, mock.Anything)
	labTestRepo.AssertNotCalled(t, "CreateUrineTest", mock.Anything, mock.Anything)
	labTestRepo.AssertNotCalled(t, "CreateBloodTest", mock.Anything, mock.Anything)
	require.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestLabTestSave_ResolvesSingleTestNames(t *testing.T) {
	db, sqlMock := newTestDB(t)
	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	person := &entity.Person{PersonID: 3, IDNumber: "A123456789"}

	personRepo := new(MockPersonRepository)
	personRepo.On("FindByIDNumber", mock.Anything, "A123456789").Return(person, nil)

	var items []entity.LabTestSingleItem
	labTestRepo := new(MockLabTestRepository)
	labTestRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	labTestRepo.On("CreateSingleItem", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			items = append(items, *args.Get(1).(*entity.LabTestSingleItem))
		}).Return(nil)

	req := validLabTestRequest()
	req.SingleTests = []dto.SingleTestInput{
		{TestCode: "09005C", Result: "98"},
		{TestCode: "other", CustomCode: "XYZ01", Result: "positive"},
		{TestCode: "UNLISTED", Result: "ok"},
	}

	uc := NewLabTestUsecase(db, testLogger(), personRepo, labTestRepo)
	result, err := uc.Save(context.Background(), req, "203.0.113.7")

	require.NoError(t, err)
	assert.Equal(t, 3, result.SingleTestCount)
	require.Len(t, items, 3)
	assert.Equal(t, "指尖血血糖 One touch Glucose", items[0].TestName)
	assert.Equal(t, "XYZ01", items[1].TestCode)
	assert.Equal(t, "其他檢驗：XYZ01", items[1].TestName)
	assert.Equal(t, "UNLISTED", items[2].TestName)
	require.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestLabTestSave_CountsPanelFields(t *testing.T) {
	db, sqlMock := newTestDB(t)
	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	person := &entity.Person{PersonID: 3, IDNumber: "A123456789"}

	personRepo := new(MockPersonRepository)
	personRepo.On("FindByIDNumber", mock.Anything, "A123456789").Return(person, nil)

	labTestRepo := new(MockLabTestRepository)
	labTestRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	labTestRepo.On("CreateUrineTest", mock.Anything, mock.MatchedBy(func(u *entity.LabTestUrine) bool {
		return u.Glucose != nil && *u.Glucose == "negative" && u.Color == nil
	})).Return(nil)
	labTestRepo.On("CreateBloodTest", mock.Anything, mock.MatchedBy(func(b *entity.LabTestBlood) bool {
		return b.Hb != nil && *b.Hb == "14.2"
	})).Return(nil)

	req := validLabTestRequest()
	req.UrineTest = dto.UrineTestInput{Glucose: "negative", Protein: "trace"}
	req.BloodTest = dto.BloodTestInput{Hb: "14.2"}

	uc := NewLabTestUsecase(db, testLogger(), personRepo, labTestRepo)
	result, err := uc.Save(context.Background(), req, "203.0.113.7")

	require.NoError(t, err)
	assert.Equal(t, 2, result.UrineTestItems)
	assert.Equal(t, 1, result.BloodTestItems)
	// Each filled panel counts once toward the total.
	assert.Equal(t, 2, result.TotalItems)
	labTestRepo.AssertExpectations(t)
	require.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestLabTestGetRecent_CapsLimit(t *testing.T) {
	db, _ := newTestDB(t)

	labTestRepo := new(MockLabTestRepository)
	labTestRepo.On("FindRecent", mock.Anything, maxRecentLimit).Return([]entity.LabTestSummary{}, nil)

	uc := NewLabTestUsecase(db, testLogger(), new(MockPersonRepository), labTestRepo)
	_, err := uc.GetRecent(context.Background(), 5000)

	require.NoError(t, err)
	labTestRepo.AssertExpectations(t)
}

func TestLabTestGetByIDNumber_NotFound(t *testing.T) {
	db, _ := newTestDB(t)

	labTestRepo := new(MockLabTestRepository)
	labTestRepo.On("FindByIDNumber", mock.Anything, "A123456789").Return([]entity.LabTest{}, nil)

	uc := NewLabTestUsecase(db, testLogger(), new(MockPersonRepository), labTestRepo)
	_, err := uc.GetByIDNumber(context.Background(), "A123456789")

	assert.ErrorIs(t, err, ErrLabTestNotFound)
}
