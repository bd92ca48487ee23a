package entity

import (
	"time"

	"gorm.io/datatypes"
)

// MetabolicPrevention is one screening event. Rows accumulate over
// time for the same person; nothing is upserted. BMI is stored so the
// stats query can aggregate it in SQL, but read responses recompute
// it from height and weight.
type MetabolicPrevention struct {
	MetabolicID          uint                        `gorm:"column:metabolic_id;primaryKey" json:"metabolic_id"`
	PersonID             uint                        `gorm:"column:person_id;not null;index" json:"person_id"`
	IDNumber             string                      `gorm:"column:id_number;type:varchar(10);not null;index" json:"id_number"`
	BirthDate            time.Time                   `gorm:"column:birth_date;type:date;not null" json:"birth_date"`
	Name                 string                      `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Gender               string                      `gorm:"column:gender;type:varchar(2);not null" json:"gender"`
	CollectionDate       string                      `gorm:"column:collection_date;type:varchar(20);not null" json:"collection_date"`
	RiskSmoking          string                      `gorm:"column:risk_smoking;type:varchar(10);not null" json:"risk_smoking"`
	RiskBetelNut         string                      `gorm:"column:risk_betel_nut;type:varchar(10);not null" json:"risk_betel_nut"`
	RiskExercise         string                      `gorm:"column:risk_exercise;type:varchar(10);not null" json:"risk_exercise"`
	AccompanyingDiseases datatypes.JSONSlice[string] `gorm:"column:accompanying_diseases" json:"accompanying_diseases"`
	DiseaseOther         *string                     `gorm:"column:accompanying_diseases_other;type:varchar(200)" json:"accompanying_diseases_other,omitempty"`
	ExaminationDate      string                      `gorm:"column:examination_date;type:varchar(20);not null" json:"examination_date"`
	Height               float64                     `gorm:"column:height;type:decimal(5,1);not null" json:"height"`
	Weight               float64                     `gorm:"column:weight;type:decimal(5,1);not null" json:"weight"`
	Waist                float64                     `gorm:"column:waist;type:decimal(5,1);not null" json:"waist"`
	SystolicBP           int                         `gorm:"column:systolic_bp;not null" json:"systolic_bp"`
	DiastolicBP          int                         `gorm:"column:diastolic_bp;not null" json:"diastolic_bp"`
	BMI                  float64                     `gorm:"column:bmi;type:decimal(5,2);not null" json:"bmi"`
	BPSource             string                      `gorm:"column:bp_source;type:varchar(20);not null" json:"bp_source"`
	AntihypertensiveDrug string                      `gorm:"column:antihypertensive_drug;type:varchar(10);not null" json:"antihypertensive_drug"`
	HypoglycemicDrug     string                      `gorm:"column:hypoglycemic_drug;type:varchar(10);not null" json:"hypoglycemic_drug"`
	LipidLoweringDrug    string                      `gorm:"column:lipid_lowering_drug;type:varchar(10);not null" json:"lipid_lowering_drug"`
	FastingGlucose       float64                     `gorm:"column:fasting_glucose;type:decimal(6,1);not null" json:"fasting_glucose"`
	Triglyceride         float64                     `gorm:"column:triglyceride;type:decimal(6,1);not null" json:"triglyceride"`
	HDLCholesterol       float64                     `gorm:"column:hdl_cholesterol;type:decimal(6,1);not null" json:"hdl_cholesterol"`
	LDLCholesterol       float64                     `gorm:"column:ldl_cholesterol;type:decimal(6,1);not null" json:"ldl_cholesterol"`
	HbA1c                float64                     `gorm:"column:hba1c;type:decimal(4,1);not null" json:"hba1c"`
	TotalCholesterol     float64                     `gorm:"column:total_cholesterol;type:decimal(6,1);not null" json:"total_cholesterol"`
	IPAddress            string                      `gorm:"column:ip_address;type:varchar(45)" json:"ip_address"`
	CreatedAt            time.Time                   `gorm:"column:created_at" json:"created_at"`

	Person Person `gorm:"foreignKey:PersonID;references:PersonID" json:"person,omitempty"`
}

func (MetabolicPrevention) TableName() string {
	return "metabolic_prevention"
}

// MetabolicStats is the aggregate row for the stats query.
type MetabolicStats struct {
	TotalRecords        int64    `gorm:"column:total_records" json:"total_records"`
	AvgBMI              *float64 `gorm:"column:avg_bmi" json:"avg_bmi"`
	AvgSystolicBP       *float64 `gorm:"column:avg_systolic_bp" json:"avg_systolic_bp"`
	AvgDiastolicBP      *float64 `gorm:"column:avg_diastolic_bp" json:"avg_diastolic_bp"`
	AvgFastingGlucose   *float64 `gorm:"column:avg_fasting_glucose" json:"avg_fasting_glucose"`
	AvgTotalCholesterol *float64 `gorm:"column:avg_total_cholesterol" json:"avg_total_cholesterol"`
	SmokingCount        int64    `gorm:"column:smoking_count" json:"smoking_count"`
	BetelNutCount       int64    `gorm:"column:betel_nut_count" json:"betel_nut_count"`
	NoExerciseCount     int64    `gorm:"column:no_exercise_count" json:"no_exercise_count"`
	OverweightCount     int64    `gorm:"column:overweight_count" json:"overweight_count"`
	HypertensionCount   int64    `gorm:"column:hypertension_count" json:"hypertension_count"`
}

// MetabolicRiskGroup is one bucket of the grouped risk analysis.
type MetabolicRiskGroup struct {
	RiskLevel         string   `gorm:"column:risk_level" json:"risk_level"`
	Count             int64    `gorm:"column:count" json:"count"`
	AvgBMI            *float64 `gorm:"column:avg_bmi" json:"avg_bmi"`
	AvgSystolicBP     *float64 `gorm:"column:avg_systolic_bp" json:"avg_systolic_bp"`
	AvgDiastolicBP    *float64 `gorm:"column:avg_diastolic_bp" json:"avg_diastolic_bp"`
	AvgFastingGlucose *float64 `gorm:"column:avg_fasting_glucose" json:"avg_fasting_glucose"`
}
