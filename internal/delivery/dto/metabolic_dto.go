package dto

import "time"

// Request DTOs
//
// The payload arrives in three validated field groups: basic data,
// risk factors, examination values. Gender comes in as 0 (male) or
// 1 (female) and is translated at the persistence boundary.

type SaveMetabolicRequest struct {
	IDNumber  string `json:"idNumber" validate:"required,len=10"`
	BirthDate string `json:"birthDate" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Gender    string `json:"gender" validate:"required,oneof=0 1"`
	CaseDate  string `json:"caseDate" validate:"required"`

	Smoking      string   `json:"smoking" validate:"required"`
	BetelNut     string   `json:"betelNut" validate:"required"`
	Exercise     string   `json:"exercise" validate:"required"`
	Diseases     []string `json:"diseases" validate:"omitempty"`
	DiseaseOther string   `json:"diseaseOther" validate:"omitempty"`

	CheckDate        string   `json:"checkDate" validate:"required"`
	Height           *float64 `json:"height" validate:"required,gt=0,lte=300"`
	Weight           *float64 `json:"weight" validate:"required,gt=0,lte=500"`
	Waist            *float64 `json:"waist" validate:"required,gte=0"`
	SystolicBP       *int     `json:"systolicBP" validate:"required,gte=1,lte=300"`
	DiastolicBP      *int     `json:"diastolicBP" validate:"required,gte=1,lte=200"`
	BPSource         string   `json:"bpSource" validate:"required"`
	BPMedicine       string   `json:"bpMedicine" validate:"required"`
	SugarMedicine    string   `json:"sugarMedicine" validate:"required"`
	LipidMedicine    string   `json:"lipidMedicine" validate:"required"`
	FastingGlucose   *float64 `json:"fastingGlucose" validate:"required,gte=0"`
	Triglyceride     *float64 `json:"triglyceride" validate:"required,gte=0"`
	HDL              *float64 `json:"hdl" validate:"required,gte=0"`
	LDL              *float64 `json:"ldl" validate:"required,gte=0"`
	HbA1c            *float64 `json:"hba1c" validate:"required,gte=0"`
	TotalCholesterol *float64 `json:"totalCholesterol" validate:"required,gte=0"`
}

// Response DTOs

type SaveMetabolicResponse struct {
	PersonID    uint    `json:"person_id"`
	MetabolicID uint    `json:"metabolic_id"`
	BMI         float64 `json:"bmi"`
	BMIStatus   string  `json:"bmi_status"`
	BPStatus    string  `json:"bp_status"`
}

type MetabolicRecordResponse struct {
	MetabolicID          uint      `json:"metabolic_id"`
	PersonID             uint      `json:"person_id"`
	IDNumber             string    `json:"id_number"`
	Name                 string    `json:"name"`
	Gender               string    `json:"gender"`
	BirthDate            string    `json:"birth_date"`
	Age                  int       `json:"age"`
	Phone                *string   `json:"phone"`
	Email                *string   `json:"email"`
	CollectionDate       string    `json:"collection_date"`
	RiskSmoking          string    `json:"risk_smoking"`
	RiskBetelNut         string    `json:"risk_betel_nut"`
	RiskExercise         string    `json:"risk_exercise"`
	AccompanyingDiseases []string  `json:"accompanying_diseases"`
	DiseaseOther         *string   `json:"accompanying_diseases_other,omitempty"`
	ExaminationDate      string    `json:"examination_date"`
	Height               float64   `json:"height"`
	Weight               float64   `json:"weight"`
	Waist                float64   `json:"waist"`
	SystolicBP           int       `json:"systolic_bp"`
	DiastolicBP          int       `json:"diastolic_bp"`
	BMI                  float64   `json:"bmi"`
	BPSource             string    `json:"bp_source"`
	AntihypertensiveDrug string    `json:"antihypertensive_drug"`
	HypoglycemicDrug     string    `json:"hypoglycemic_drug"`
	LipidLoweringDrug    string    `json:"lipid_lowering_drug"`
	FastingGlucose       float64   `json:"fasting_glucose"`
	Triglyceride         float64   `json:"triglyceride"`
	HDLCholesterol       float64   `json:"hdl_cholesterol"`
	LDLCholesterol       float64   `json:"ldl_cholesterol"`
	HbA1c                float64   `json:"hba1c"`
	TotalCholesterol     float64   `json:"total_cholesterol"`
	CreatedAt            time.Time `json:"created_at"`
}

type MetabolicListItem struct {
	MetabolicID     uint      `json:"metabolic_id"`
	IDNumber        string    `json:"id_number"`
	Name            string    `json:"name"`
	Gender          string    `json:"gender"`
	BirthDate       string    `json:"birth_date"`
	Age             int       `json:"age"`
	CollectionDate  string    `json:"collection_date"`
	ExaminationDate string    `json:"examination_date"`
	BMI             float64   `json:"bmi"`
	SystolicBP      int       `json:"systolic_bp"`
	DiastolicBP     int       `json:"diastolic_bp"`
	RiskSmoking     string    `json:"risk_smoking"`
	RiskBetelNut    string    `json:"risk_betel_nut"`
	RiskExercise    string    `json:"risk_exercise"`
	CreatedAt       time.Time `json:"created_at"`
}

type MetabolicRecentItem struct {
	MetabolicID    uint      `json:"metabolic_id"`
	IDNumber       string    `json:"id_number"`
	Name           string    `json:"name"`
	Gender         string    `json:"gender"`
	Age            int       `json:"age"`
	CollectionDate string    `json:"collection_date"`
	BMI            float64   `json:"bmi"`
	SystolicBP     int       `json:"systolic_bp"`
	DiastolicBP    int       `json:"diastolic_bp"`
	FastingGlucose float64   `json:"fasting_glucose"`
	CreatedAt      time.Time `json:"created_at"`
}

type MetabolicListResponse struct {
	Items  []MetabolicListItem `json:"items"`
	Total  int64               `json:"total"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}
