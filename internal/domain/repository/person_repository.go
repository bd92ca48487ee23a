package repository

import (
	"time"

	"community-health-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PersonRepository interface {
	FindByIDNumber(db *gorm.DB, idNumber string) (*entity.Person, error)
	Create(db *gorm.DB, person *entity.Person) error
	Update(db *gorm.DB, person *entity.Person) error
	// UpdateBirthDateIfChanged touches birth_date only when the stored
	// value differs from the given one.
	UpdateBirthDateIfChanged(db *gorm.DB, personID uint, birthDate time.Time) error
}
