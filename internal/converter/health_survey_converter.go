package converter

import (
	"time"

	"community-health-api/internal/delivery/dto"
	"community-health-api/internal/domain/entity"
	"community-health-api/pkg/vitals"
)

const dateLayout = "2006-01-02"

// Derived fields (age, BMI) are always recomputed from the stored
// inputs rather than read back from storage.

func HealthSurveyToDetailResponse(survey *entity.HealthSurvey) *dto.HealthSurveyDetailResponse {
	if survey == nil {
		return nil
	}

	return &dto.HealthSurveyDetailResponse{
		PersonID:             survey.PersonID,
		IDNumber:             survey.Person.IDNumber,
		Name:                 survey.Person.Name,
		Gender:               survey.Person.Gender,
		BirthDate:            survey.Person.BirthDate.Format(dateLayout),
		Age:                  vitals.Age(survey.Person.BirthDate, time.Now()),
		SurveyID:             survey.SurveyID,
		Employment:           survey.Employment,
		EmploymentOther:      survey.EmploymentOther,
		Caregiver:            survey.Caregiver,
		CaregiverOther:       survey.CaregiverOther,
		City:                 survey.City,
		District:             survey.District,
		FamilyLifeCycle:      survey.FamilyLifeCycle,
		FamilyLifeCycleOther: survey.FamilyLifeCycleOther,
		ChronicDiseases:      survey.ChronicDiseases,
		ChronicDiseaseOther:  survey.ChronicDiseaseOther,
		Medications:          survey.Medications,
		MedicationOther:      survey.MedicationOther,
		FoodAllergy:          survey.FoodAllergy,
		DrugAllergy:          survey.DrugAllergy,
		Smoking:              survey.Smoking,
		Drinking:             survey.Drinking,
		BetelNut:             survey.BetelNut,
		Height:               survey.Height,
		Weight:               survey.Weight,
		BMI:                  vitals.BMI(survey.Weight, survey.Height),
		SystolicBP:           survey.SystolicBP,
		DiastolicBP:          survey.DiastolicBP,
		Waist:                survey.Waist,
		Pulse:                survey.Pulse,
		SubmittedAt:          survey.SubmittedAt,
		UpdatedAt:            survey.UpdatedAt,
	}
}

func HealthSurveysToCityItems(surveys []entity.HealthSurvey) []dto.HealthSurveyCityItem {
	now := time.Now()
	items := make([]dto.HealthSurveyCityItem, len(surveys))
	for i, survey := range surveys {
		items[i] = dto.HealthSurveyCityItem{
			Name:        survey.Person.Name,
			IDNumber:    survey.Person.IDNumber,
			Gender:      survey.Person.Gender,
			Age:         vitals.Age(survey.Person.BirthDate, now),
			City:        survey.City,
			District:    survey.District,
			BMI:         vitals.BMI(survey.Weight, survey.Height),
			SubmittedAt: survey.SubmittedAt,
		}
	}
	return items
}

func HealthSurveysToListItems(surveys []entity.HealthSurvey) []dto.HealthSurveyListItem {
	now := time.Now()
	items := make([]dto.HealthSurveyListItem, len(surveys))
	for i, survey := range surveys {
		items[i] = dto.HealthSurveyListItem{
			PersonID:    survey.PersonID,
			IDNumber:    survey.Person.IDNumber,
			Name:        survey.Person.Name,
			Gender:      survey.Person.Gender,
			BirthDate:   survey.Person.BirthDate.Format(dateLayout),
			Age:         vitals.Age(survey.Person.BirthDate, now),
			City:        survey.City,
			District:    survey.District,
			Employment:  survey.Employment,
			Height:      survey.Height,
			Weight:      survey.Weight,
			BMI:         vitals.BMI(survey.Weight, survey.Height),
			SystolicBP:  survey.SystolicBP,
			DiastolicBP: survey.DiastolicBP,
			SubmittedAt: survey.SubmittedAt,
		}
	}
	return items
}
