package repository

import (
	"errors"

	"community-health-api/internal/domain/entity"
	domainRepo "community-health-api/internal/domain/repository"

	"gorm.io/gorm"
)

const labTestSummaryColumns = `lab_test.test_id, lab_test.id_number, pi.name AS name,
	pi.gender AS gender, lab_test.birth_date, lab_test.card_date,
	lab_test.medical_serial, d.name AS doctor_name, lab_test.created_at,
	COUNT(lts.item_id) AS item_count`

type labTestRepository struct{}

func NewLabTestRepository() domainRepo.LabTestRepository {
	return &labTestRepository{}
}

func (r *labTestRepository) Create(db *gorm.DB, test *entity.LabTest) error {
	return db.Omit("Person", "Doctor", "SingleItems", "UrineTest", "BloodTest").Create(test).Error
}

func (r *labTestRepository) CreateSingleItem(db *gorm.DB, item *entity.LabTestSingleItem) error {
	return db.Create(item).Error
}

func (r *labTestRepository) CreateUrineTest(db *gorm.DB, urine *entity.LabTestUrine) error {
	return db.Create(urine).Error
}

func (r *labTestRepository) CreateBloodTest(db *gorm.DB, blood *entity.LabTestBlood) error {
	return db.Create(blood).Error
}

func (r *labTestRepository) FindByIDNumber(db *gorm.DB, idNumber string) ([]entity.LabTest, error) {
	var tests []entity.LabTest
	err := db.Preload("Person").
		Preload("Doctor").
		Preload("SingleItems").
		Preload("UrineTest").
		Preload("BloodTest").
		Where("id_number = ?", idNumber).
		Order("created_at DESC").
		Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *labTestRepository) FindByTestID(db *gorm.DB, testID uint) (*entity.LabTest, error) {
	var test entity.LabTest
	err := db.Preload("Person").
		Preload("Doctor").
		Preload("SingleItems").
		Preload("UrineTest").
		Preload("BloodTest").
		Where("test_id = ?", testID).
		First(&test).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &test, nil
}

func (r *labTestRepository) Stats(db *gorm.DB) (*entity.LabTestStats, error) {
	var stats entity.LabTestStats
	err := db.Table("lab_test lt").
		Select(`COUNT(DISTINCT lt.test_id) AS total_tests,
			COUNT(DISTINCT lt.person_id) AS total_persons,
			COUNT(lts.item_id) AS total_single_items,
			COUNT(DISTINCT ltu.test_id) AS urine_test_count,
			COUNT(DISTINCT ltb.test_id) AS blood_test_count,
			COUNT(DISTINCT lt.doctor_id) AS doctor_count`).
		Joins("LEFT JOIN lab_test_single_items lts ON lt.test_id = lts.test_id").
		Joins("LEFT JOIN lab_test_urine ltu ON lt.test_id = ltu.test_id").
		Joins("LEFT JOIN lab_test_blood ltb ON lt.test_id = ltb.test_id").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *labTestRepository) FindByDoctor(db *gorm.DB, doctorID string) ([]entity.LabTestSummary, error) {
	var rows []entity.LabTestSummary
	err := r.summaryQuery(db).
		Where("lab_test.doctor_id = ?", doctorID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *labTestRepository) FindRecent(db *gorm.DB, limit int) ([]entity.LabTestSummary, error) {
	var rows []entity.LabTestSummary
	err := r.summaryQuery(db).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *labTestRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.LabTestSummary, error) {
	var rows []entity.LabTestSummary
	err := r.summaryQuery(db).
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *labTestRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.LabTest{}).Count(&total).Error
	return total, err
}

func (r *labTestRepository) summaryQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&entity.LabTest{}).
		Select(labTestSummaryColumns).
		Joins("INNER JOIN personal_info pi ON lab_test.person_id = pi.person_id").
		Joins("LEFT JOIN doctors d ON lab_test.doctor_id = d.id_number").
		Joins("LEFT JOIN lab_test_single_items lts ON lab_test.test_id = lts.test_id").
		Group("lab_test.test_id, pi.name, pi.gender, d.name").
		Order("lab_test.created_at DESC")
}
