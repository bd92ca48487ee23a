package repository

import (
	"errors"

	"community-health-api/internal/domain/entity"
	domainRepo "community-health-api/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) FindByDoctorID(db *gorm.DB, doctorID uint) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("doctor_id = ?", doctorID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByIDNumber(db *gorm.DB, idNumber string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("id_number = ?", idNumber).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(db *gorm.DB, status string) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	query := db.Order("name")
	if status != "all" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Save(doctor).Error
}

func (r *doctorRepository) SetStatus(db *gorm.DB, doctorID uint, status string) (int64, error) {
	result := db.Model(&entity.Doctor{}).
		Where("doctor_id = ?", doctorID).
		Update("status", status)
	return result.RowsAffected, result.Error
}
