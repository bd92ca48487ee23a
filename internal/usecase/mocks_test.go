package usecase

import (
	"testing"
	"time"

	"community-health-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newTestDB builds a gorm DB over sqlmock so transaction begin/commit
// can be asserted without a real database.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) FindByIDNumber(db *gorm.DB, idNumber string) (*entity.Person, error) {
	args := m.Called(db, idNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Person), args.Error(1)
}

func (m *MockPersonRepository) Create(db *gorm.DB, person *entity.Person) error {
	args := m.Called(db, person)
	return args.Error(0)
}

func (m *MockPersonRepository) Update(db *gorm.DB, person *entity.Person) error {
	args := m.Called(db, person)
	return args.Error(0)
}

func (m *MockPersonRepository) UpdateBirthDateIfChanged(db *gorm.DB, personID uint, birthDate time.Time) error {
	args := m.Called(db, personID, birthDate)
	return args.Error(0)
}

type MockPersonResolver struct {
	mock.Mock
}

func (m *MockPersonResolver) Resolve(tx *gorm.DB, input PersonInput, policy PersonUpdatePolicy) (*entity.Person, error) {
	args := m.Called(tx, input, policy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Person), args.Error(1)
}

type MockHealthSurveyRepository struct {
	mock.Mock
}

func (m *MockHealthSurveyRepository) FindByPersonID(db *gorm.DB, personID uint) (*entity.HealthSurvey, error) {
	args := m.Called(db, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.HealthSurvey), args.Error(1)
}

func (m *MockHealthSurveyRepository) Create(db *gorm.DB, survey *entity.HealthSurvey) error {
	args := m.Called(db, survey)
	return args.Error(0)
}

func (m *MockHealthSurveyRepository) Update(db *gorm.DB, survey *entity.HealthSurvey) error {
	args := m.Called(db, survey)
	return args.Error(0)
}

func (m *MockHealthSurveyRepository) FindDetailByIDNumber(db *gorm.DB, idNumber string) (*entity.HealthSurvey, error) {
	args := m.Called(db, idNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.HealthSurvey), args.Error(1)
}

func (m *MockHealthSurveyRepository) Stats(db *gorm.DB) (*entity.HealthSurveyStats, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.HealthSurveyStats), args.Error(1)
}

func (m *MockHealthSurveyRepository) FindByCity(db *gorm.DB, city string) ([]entity.HealthSurvey, error) {
	args := m.Called(db, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.HealthSurvey), args.Error(1)
}

func (m *MockHealthSurveyRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.HealthSurvey, error) {
	args := m.Called(db, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.HealthSurvey), args.Error(1)
}

func (m *MockHealthSurveyRepository) Count(db *gorm.DB) (int64, error) {
	args := m.Called(db)
	return args.Get(0).(int64), args.Error(1)
}

type MockLabTestRepository struct {
	mock.Mock
}

func (m *MockLabTestRepository) Create(db *gorm.DB, test *entity.LabTest) error {
	args := m.Called(db, test)
	return args.Error(0)
}

func (m *MockLabTestRepository) CreateSingleItem(db *gorm.DB, item *entity.LabTestSingleItem) error {
	args := m.Called(db, item)
	return args.Error(0)
}

func (m *MockLabTestRepository) CreateUrineTest(db *gorm.DB, urine *entity.LabTestUrine) error {
	args := m.Called(db, urine)
	return args.Error(0)
}

func (m *MockLabTestRepository) CreateBloodTest(db *gorm.DB, blood *entity.LabTestBlood) error {
	args := m.Called(db, blood)
	return args.Error(0)
}

func (m *MockLabTestRepository) FindByIDNumber(db *gorm.DB, idNumber string) ([]entity.LabTest, error) {
	args := m.Called(db, idNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.LabTest), args.Error(1)
}

func (m *MockLabTestRepository) FindByTestID(db *gorm.DB, testID uint) (*entity.LabTest, error) {
	args := m.Called(db, testID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LabTest), args.Error(1)
}

func (m *MockLabTestRepository) Stats(db *gorm.DB) (*entity.LabTestStats, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LabTestStats), args.Error(1)
}

func (m *MockLabTestRepository) FindByDoctor(db *gorm.DB, doctorID string) ([]entity.LabTestSummary, error) {
	args := m.Called(db, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.LabTestSummary), args.Error(1)
}

func (m *MockLabTestRepository) FindRecent(db *gorm.DB, limit int) ([]entity.LabTestSummary, error) {
	args := m.Called(db, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.LabTestSummary), args.Error(1)
}

func (m *MockLabTestRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.LabTestSummary, error) {
	args := m.Called(db, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.LabTestSummary), args.Error(1)
}

func (m *MockLabTestRepository) Count(db *gorm.DB) (int64, error) {
	args := m.Called(db)
	return args.Get(0).(int64), args.Error(1)
}

type MockBloodPressureRepository struct {
	mock.Mock
}

func (m *MockBloodPressureRepository) Create(db *gorm.DB, reading *entity.BloodPressure) error {
	args := m.Called(db, reading)
	return args.Error(0)
}

type MockMetabolicRepository struct {
	mock.Mock
}

func (m *MockMetabolicRepository) Create(db *gorm.DB, screening *entity.MetabolicPrevention) error {
	args := m.Called(db, screening)
	return args.Error(0)
}

func (m *MockMetabolicRepository) FindByIDNumber(db *gorm.DB, idNumber string) ([]entity.MetabolicPrevention, error) {
	args := m.Called(db, idNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.MetabolicPrevention), args.Error(1)
}

func (m *MockMetabolicRepository) Stats(db *gorm.DB) (*entity.MetabolicStats, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MetabolicStats), args.Error(1)
}

func (m *MockMetabolicRepository) RiskAnalysis(db *gorm.DB, riskType string) ([]entity.MetabolicRiskGroup, error) {
	args := m.Called(db, riskType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.MetabolicRiskGroup), args.Error(1)
}

func (m *MockMetabolicRepository) FindRecent(db *gorm.DB, limit int) ([]entity.MetabolicPrevention, error) {
	args := m.Called(db, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.MetabolicPrevention), args.Error(1)
}

func (m *MockMetabolicRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.MetabolicPrevention, error) {
	args := m.Called(db, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.MetabolicPrevention), args.Error(1)
}

func (m *MockMetabolicRepository) Count(db *gorm.DB) (int64, error) {
	args := m.Called(db)
	return args.Get(0).(int64), args.Error(1)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) FindByDoctorID(db *gorm.DB, doctorID uint) (*entity.Doctor, error) {
	args := m.Called(db, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByIDNumber(db *gorm.DB, idNumber string) (*entity.Doctor, error) {
	args := m.Called(db, idNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindAll(db *gorm.DB, status string) ([]entity.Doctor, error) {
	args := m.Called(db, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	args := m.Called(db, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	args := m.Called(db, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) SetStatus(db *gorm.DB, doctorID uint, status string) (int64, error) {
	args := m.Called(db, doctorID, status)
	return args.Get(0).(int64), args.Error(1)
}
