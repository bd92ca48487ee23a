package entity

import (
	"time"

	"gorm.io/datatypes"
)

// HealthSurvey is one-to-one with Person; a repeat submission
// overwrites the existing row.
type HealthSurvey struct {
	SurveyID             uint                        `gorm:"column:survey_id;primaryKey" json:"survey_id"`
	PersonID             uint                        `gorm:"column:person_id;uniqueIndex;not null" json:"person_id"`
	Employment           string                      `gorm:"column:employment;type:varchar(50);not null" json:"employment"`
	EmploymentOther      *string                     `gorm:"column:employment_other;type:varchar(100)" json:"employment_other,omitempty"`
	Caregiver            string                      `gorm:"column:caregiver;type:varchar(50);not null" json:"caregiver"`
	CaregiverOther       *string                     `gorm:"column:caregiver_other;type:varchar(100)" json:"caregiver_other,omitempty"`
	City                 string                      `gorm:"column:city;type:varchar(20);not null;index" json:"city"`
	District             string                      `gorm:"column:district;type:varchar(20);not null" json:"district"`
	FamilyLifeCycle      string                      `gorm:"column:family_life_cycle;type:varchar(50);not null" json:"family_life_cycle"`
	FamilyLifeCycleOther *string                     `gorm:"column:family_life_cycle_other;type:varchar(100)" json:"family_life_cycle_other,omitempty"`
	ChronicDiseases      datatypes.JSONSlice[string] `gorm:"column:chronic_diseases" json:"chronic_diseases"`
	ChronicDiseaseOther  *string                     `gorm:"column:chronic_disease_other;type:varchar(200)" json:"chronic_disease_other,omitempty"`
	Medications          datatypes.JSONSlice[string] `gorm:"column:medications" json:"medications"`
	MedicationOther      *string                     `gorm:"column:medication_other;type:varchar(200)" json:"medication_other,omitempty"`
	FoodAllergy          *string                     `gorm:"column:food_allergy;type:varchar(200)" json:"food_allergy,omitempty"`
	DrugAllergy          *string                     `gorm:"column:drug_allergy;type:varchar(200)" json:"drug_allergy,omitempty"`
	Smoking              *string                     `gorm:"column:smoking;type:varchar(20)" json:"smoking,omitempty"`
	Drinking             *string                     `gorm:"column:drinking;type:varchar(20)" json:"drinking,omitempty"`
	BetelNut             *string                     `gorm:"column:betel_nut;type:varchar(20)" json:"betel_nut,omitempty"`
	Height               float64                     `gorm:"column:height;type:decimal(5,1);not null" json:"height"`
	Weight               float64                     `gorm:"column:weight;type:decimal(5,1);not null" json:"weight"`
	SystolicBP           int                         `gorm:"column:systolic_bp;not null" json:"systolic_bp"`
	DiastolicBP          int                         `gorm:"column:diastolic_bp;not null" json:"diastolic_bp"`
	Waist                float64                     `gorm:"column:waist;type:decimal(5,1);not null" json:"waist"`
	Pulse                int                         `gorm:"column:pulse;not null" json:"pulse"`
	IPAddress            string                      `gorm:"column:ip_address;type:varchar(45)" json:"ip_address"`
	SubmittedAt          time.Time                   `gorm:"column:submitted_at;autoCreateTime" json:"submitted_at"`
	UpdatedAt            time.Time                   `gorm:"column:updated_at" json:"updated_at"`

	Person Person `gorm:"foreignKey:PersonID;references:PersonID" json:"person,omitempty"`
}

func (HealthSurvey) TableName() string {
	return "health_survey"
}

// HealthSurveyStats is the aggregate row for the stats query.
// Averages are nil when no surveys exist.
type HealthSurveyStats struct {
	TotalPersons   int64    `gorm:"column:total_persons" json:"total_persons"`
	TotalSurveys   int64    `gorm:"column:total_surveys" json:"total_surveys"`
	AvgAge         *float64 `gorm:"column:avg_age" json:"avg_age"`
	AvgHeight      *float64 `gorm:"column:avg_height" json:"avg_height"`
	AvgWeight      *float64 `gorm:"column:avg_weight" json:"avg_weight"`
	AvgBMI         *float64 `gorm:"column:avg_bmi" json:"avg_bmi"`
	AvgSystolicBP  *float64 `gorm:"column:avg_systolic_bp" json:"avg_systolic_bp"`
	AvgDiastolicBP *float64 `gorm:"column:avg_diastolic_bp" json:"avg_diastolic_bp"`
}
