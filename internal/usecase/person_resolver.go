package usecase

import (
	"time"

	"community-health-api/internal/domain/entity"
	"community-health-api/internal/domain/repository"

	"gorm.io/gorm"
)

// PersonUpdatePolicy controls what happens when a submission references
// an already-known national ID. The two policies are deliberately kept
// apart: the survey and metabolic forms carry authoritative demographic
// data and always win, while the blood-pressure form only corrects the
// birth date when it differs.
type PersonUpdatePolicy int

const (
	// OverwriteAlways replaces name, birth date and gender on every
	// call (last writer wins).
	OverwriteAlways PersonUpdatePolicy = iota
	// OverwriteOnChange updates the birth date only when it differs
	// from the stored value and leaves everything else untouched.
	OverwriteOnChange
)

// genderPlaceholder is stored when a blood-pressure submission arrives
// before any form that carries gender. A later survey or metabolic
// write completes the record.
const genderPlaceholder = "男"

// PersonInput is the demographic slice of a submission. Name and
// Gender may be empty under OverwriteOnChange.
type PersonInput struct {
	IDNumber  string
	Name      string
	BirthDate time.Time
	Gender    string
}

// PersonResolver finds or creates the canonical person record for a
// national ID inside the caller's transaction.
type PersonResolver interface {
	Resolve(tx *gorm.DB, input PersonInput, policy PersonUpdatePolicy) (*entity.Person, error)
}

type personResolver struct {
	personRepo repository.PersonRepository
}

func NewPersonResolver(personRepo repository.PersonRepository) PersonResolver {
	return &personResolver{personRepo: personRepo}
}

func (r *personResolver) Resolve(tx *gorm.DB, input PersonInput, policy PersonUpdatePolicy) (*entity.Person, error) {
	person, err := r.personRepo.FindByIDNumber(tx, input.IDNumber)
	if err != nil {
		return nil, err
	}

	if person == nil {
		person = &entity.Person{
			IDNumber:  input.IDNumber,
			BirthDate: input.BirthDate,
		}
		if policy == OverwriteAlways {
			name := input.Name
			person.Name = &name
			person.Gender = input.Gender
		} else {
			person.Name = nil
			person.Gender = genderPlaceholder
		}
		if err := r.personRepo.Create(tx, person); err != nil {
			return nil, err
		}
		return person, nil
	}

	switch policy {
	case OverwriteAlways:
		name := input.Name
		person.Name = &name
		person.BirthDate = input.BirthDate
		person.Gender = input.Gender
		if err := r.personRepo.Update(tx, person); err != nil {
			return nil, err
		}
	case OverwriteOnChange:
		if err := r.personRepo.UpdateBirthDateIfChanged(tx, person.PersonID, input.BirthDate); err != nil {
			return nil, err
		}
	}

	return person, nil
}
