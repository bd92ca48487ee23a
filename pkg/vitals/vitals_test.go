package vitals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBMI(t *testing.T) {
	assert.Equal(t, 22.86, BMI(70, 175))
	assert.Equal(t, 24.22, BMI(62, 160))
	assert.Equal(t, 0.0, BMI(70, 0))
}

func TestBMIStatus(t *testing.T) {
	tests := []struct {
		bmi      float64
		expected string
	}{
		{17.0, BMIUnderweight},
		{18.5, BMINormal},
		{23.99, BMINormal},
		{24.0, BMIOverweight},
		{27.0, BMIMildObesity},
		{30.0, BMIModerateObesity},
		{35.0, BMISevereObesity},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, BMIStatus(tt.bmi), "bmi %v", tt.bmi)
	}
}

func TestBloodPressureStatus(t *testing.T) {
	tests := []struct {
		systolic  int
		diastolic int
		expected  string
	}{
		{185, 70, BPCrisis},
		{150, 125, BPCrisis},
		{145, 85, BPHypertension},
		{130, 95, BPHypertension},
		{125, 75, BPElevated},
		{110, 85, BPElevated},
		{110, 70, BPNormal},
		{85, 55, BPLow},
		{95, 55, BPLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, BloodPressureStatus(tt.systolic, tt.diastolic),
			"%d/%d", tt.systolic, tt.diastolic)
	}
}

func TestAge(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 35, Age(time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 34, Age(time.Date(1990, 6, 16, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 35, Age(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 0, Age(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), now))
}
