package repository

import (
	"community-health-api/internal/domain/entity"

	"gorm.io/gorm"
)

type HealthSurveyRepository interface {
	FindByPersonID(db *gorm.DB, personID uint) (*entity.HealthSurvey, error)
	Create(db *gorm.DB, survey *entity.HealthSurvey) error
	Update(db *gorm.DB, survey *entity.HealthSurvey) error

	FindDetailByIDNumber(db *gorm.DB, idNumber string) (*entity.HealthSurvey, error)
	Stats(db *gorm.DB) (*entity.HealthSurveyStats, error)
	FindByCity(db *gorm.DB, city string) ([]entity.HealthSurvey, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.HealthSurvey, error)
	Count(db *gorm.DB) (int64, error)
}
