package repository

import (
	"errors"
	"time"

	"community-health-api/internal/domain/entity"
	domainRepo "community-health-api/internal/domain/repository"

	"gorm.io/gorm"
)

type personRepository struct{}

func NewPersonRepository() domainRepo.PersonRepository {
	return &personRepository{}
}

func (r *personRepository) FindByIDNumber(db *gorm.DB, idNumber string) (*entity.Person, error) {
	var person entity.Person
	err := db.Where("id_number = ?", idNumber).First(&person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &person, nil
}

func (r *personRepository) Create(db *gorm.DB, person *entity.Person) error {
	return db.Create(person).Error
}

func (r *personRepository) Update(db *gorm.DB, person *entity.Person) error {
	return db.Save(person).Error
}

func (r *personRepository) UpdateBirthDateIfChanged(db *gorm.DB, personID uint, birthDate time.Time) error {
	return db.Model(&entity.Person{}).
		Where("person_id = ? AND birth_date != ?", personID, birthDate).
		Update("birth_date", birthDate).Error
}
