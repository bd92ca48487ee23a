package repository

import (
	"community-health-api/internal/domain/entity"

	"gorm.io/gorm"
)

type LabTestRepository interface {
	Create(db *gorm.DB, test *entity.LabTest) error
	CreateSingleItem(db *gorm.DB, item *entity.LabTestSingleItem) error
	CreateUrineTest(db *gorm.DB, urine *entity.LabTestUrine) error
	CreateBloodTest(db *gorm.DB, blood *entity.LabTestBlood) error

	FindByIDNumber(db *gorm.DB, idNumber string) ([]entity.LabTest, error)
	FindByTestID(db *gorm.DB, testID uint) (*entity.LabTest, error)
	Stats(db *gorm.DB) (*entity.LabTestStats, error)
	FindByDoctor(db *gorm.DB, doctorID string) ([]entity.LabTestSummary, error)
	FindRecent(db *gorm.DB, limit int) ([]entity.LabTestSummary, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.LabTestSummary, error)
	Count(db *gorm.DB) (int64, error)
}
