package repository

import (
	"community-health-api/internal/domain/entity"
	domainRepo "community-health-api/internal/domain/repository"

	"gorm.io/gorm"
)

type bloodPressureRepository struct{}

func NewBloodPressureRepository() domainRepo.BloodPressureRepository {
	return &bloodPressureRepository{}
}

func (r *bloodPressureRepository) Create(db *gorm.DB, reading *entity.BloodPressure) error {
	return db.Omit("Person").Create(reading).Error
}
