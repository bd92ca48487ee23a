package repository

import (
	"community-health-api/internal/domain/entity"

	"gorm.io/gorm"
)

type BloodPressureRepository interface {
	Create(db *gorm.DB, reading *entity.BloodPressure) error
}
