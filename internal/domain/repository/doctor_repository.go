package repository

import (
	"community-health-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	FindByDoctorID(db *gorm.DB, doctorID uint) (*entity.Doctor, error)
	FindByIDNumber(db *gorm.DB, idNumber string) (*entity.Doctor, error)
	FindAll(db *gorm.DB, status string) ([]entity.Doctor, error)
	Create(db *gorm.DB, doctor *entity.Doctor) error
	Update(db *gorm.DB, doctor *entity.Doctor) error
	SetStatus(db *gorm.DB, doctorID uint, status string) (int64, error)
}
