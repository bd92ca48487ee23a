package dto

import "time"

// Request DTOs
//
// Numeric required fields are pointers so that a submitted zero passes
// the required check; only a missing field fails it.

type SaveHealthSurveyRequest struct {
	IDNumber             string   `json:"idNumber" validate:"required,len=10"`
	Name                 string   `json:"name" validate:"required"`
	BirthDate            string   `json:"birthDate" validate:"required"`
	Gender               string   `json:"gender" validate:"required"`
	Employment           string   `json:"employment" validate:"required"`
	EmploymentOther      string   `json:"employmentOther" validate:"omitempty"`
	Caregiver            string   `json:"caregiver" validate:"required"`
	CaregiverOther       string   `json:"caregiverOther" validate:"omitempty"`
	City                 string   `json:"city" validate:"required"`
	District             string   `json:"district" validate:"required"`
	FamilyLifeCycle      string   `json:"familyLifeCycle" validate:"required"`
	FamilyLifeCycleOther string   `json:"familyLifeCycleOther" validate:"omitempty"`
	ChronicDiseaseList   []string `json:"chronicDiseaseList" validate:"omitempty"`
	ChronicDiseaseOther  string   `json:"chronicDiseaseOther" validate:"omitempty"`
	MedicationList       []string `json:"medicationList" validate:"omitempty"`
	MedicationOther      string   `json:"medicationOther" validate:"omitempty"`
	FoodAllergy          string   `json:"foodAllergy" validate:"omitempty"`
	DrugAllergy          string   `json:"drugAllergy" validate:"omitempty"`
	Smoking              string   `json:"smoking" validate:"omitempty"`
	Drinking             string   `json:"drinking" validate:"omitempty"`
	BetelNut             string   `json:"betelNut" validate:"omitempty"`
	Height               *float64 `json:"height" validate:"required,gt=0"`
	Weight               *float64 `json:"weight" validate:"required,gt=0"`
	SystolicBP           *int     `json:"systolicBP" validate:"required,gte=1,lte=300"`
	DiastolicBP          *int     `json:"diastolicBP" validate:"required,gte=1,lte=200"`
	Waist                *float64 `json:"waist" validate:"required,gte=0"`
	Pulse                *int     `json:"pulse" validate:"required,gte=0"`
}

// Response DTOs

type SaveHealthSurveyResponse struct {
	PersonID uint `json:"person_id"`
	SurveyID uint `json:"survey_id"`
}

type HealthSurveyDetailResponse struct {
	PersonID             uint      `json:"person_id"`
	IDNumber             string    `json:"id_number"`
	Name                 *string   `json:"name"`
	Gender               string    `json:"gender"`
	BirthDate            string    `json:"birth_date"`
	Age                  int       `json:"age"`
	SurveyID             uint      `json:"survey_id"`
	Employment           string    `json:"employment"`
	EmploymentOther      *string   `json:"employment_other,omitempty"`
	Caregiver            string    `json:"caregiver"`
	CaregiverOther       *string   `json:"caregiver_other,omitempty"`
	City                 string    `json:"city"`
	District             string    `json:"district"`
	FamilyLifeCycle      string    `json:"family_life_cycle"`
	FamilyLifeCycleOther *string   `json:"family_life_cycle_other,omitempty"`
	ChronicDiseases      []string  `json:"chronic_diseases"`
	ChronicDiseaseOther  *string   `json:"chronic_disease_other,omitempty"`
	Medications          []string  `json:"medications"`
	MedicationOther      *string   `json:"medication_other,omitempty"`
	FoodAllergy          *string   `json:"food_allergy,omitempty"`
	DrugAllergy          *string   `json:"drug_allergy,omitempty"`
	Smoking              *string   `json:"smoking,omitempty"`
	Drinking             *string   `json:"drinking,omitempty"`
	BetelNut             *string   `json:"betel_nut,omitempty"`
	Height               float64   `json:"height"`
	Weight               float64   `json:"weight"`
	BMI                  float64   `json:"bmi"`
	SystolicBP           int       `json:"systolic_bp"`
	DiastolicBP          int       `json:"diastolic_bp"`
	Waist                float64   `json:"waist"`
	Pulse                int       `json:"pulse"`
	SubmittedAt          time.Time `json:"submitted_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type HealthSurveyCityItem struct {
	Name        *string   `json:"name"`
	IDNumber    string    `json:"id_number"`
	Gender      string    `json:"gender"`
	Age         int       `json:"age"`
	City        string    `json:"city"`
	District    string    `json:"district"`
	BMI         float64   `json:"bmi"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type HealthSurveyListItem struct {
	PersonID    uint      `json:"person_id"`
	IDNumber    string    `json:"id_number"`
	Name        *string   `json:"name"`
	Gender      string    `json:"gender"`
	BirthDate   string    `json:"birth_date"`
	Age         int       `json:"age"`
	City        string    `json:"city"`
	District    string    `json:"district"`
	Employment  string    `json:"employment"`
	Height      float64   `json:"height"`
	Weight      float64   `json:"weight"`
	BMI         float64   `json:"bmi"`
	SystolicBP  int       `json:"systolic_bp"`
	DiastolicBP int       `json:"diastolic_bp"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type HealthSurveyListResponse struct {
	Items  []HealthSurveyListItem `json:"items"`
	Total  int64                  `json:"total"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}
