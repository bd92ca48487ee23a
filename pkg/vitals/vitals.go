// Package vitals holds the derived-value computations shared by the
// write and read paths: BMI, BMI classification, blood-pressure
// classification and age. Classification labels follow the Taiwanese
// health authority wording used on the collection forms.
package vitals

import (
	"time"

	"github.com/shopspring/decimal"
)

// BMI status bands.
const (
	BMIUnderweight     = "體重過輕"
	BMINormal          = "正常範圍"
	BMIOverweight      = "過重"
	BMIMildObesity     = "輕度肥胖"
	BMIModerateObesity = "中度肥胖"
	BMISevereObesity   = "重度肥胖"
)

// Blood-pressure status bands.
const (
	BPCrisis       = "高血壓危象"
	BPHypertension = "高血壓"
	BPElevated     = "血壓偏高"
	BPNormal       = "正常"
	BPLow          = "血壓偏低"
)

// BMI computes weight(kg) / (height(cm)/100)^2 rounded to 2 decimals.
func BMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	bmi := decimal.NewFromFloat(weightKg).Div(decimal.NewFromFloat(m * m))
	f, _ := bmi.Round(2).Float64()
	return f
}

// BMIStatus classifies a BMI value into the standard bands.
func BMIStatus(bmi float64) string {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 24:
		return BMINormal
	case bmi < 27:
		return BMIOverweight
	case bmi < 30:
		return BMIMildObesity
	case bmi < 35:
		return BMIModerateObesity
	default:
		return BMISevereObesity
	}
}

// BloodPressureStatus classifies a reading. The ladder is evaluated
// top-down and the first matching band wins, so a crisis-level
// systolic alone is enough for the crisis band.
func BloodPressureStatus(systolic, diastolic int) string {
	switch {
	case systolic >= 180 || diastolic >= 120:
		return BPCrisis
	case systolic >= 140 || diastolic >= 90:
		return BPHypertension
	case systolic >= 120 || diastolic >= 80:
		return BPElevated
	case systolic >= 90 && diastolic >= 60:
		return BPNormal
	default:
		return BPLow
	}
}

// Age returns full years between birthDate and now.
func Age(birthDate time.Time, now time.Time) int {
	years := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
