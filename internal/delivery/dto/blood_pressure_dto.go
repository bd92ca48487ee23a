package dto

// Request DTOs

type SaveBloodPressureRequest struct {
	IDNumber    string `json:"idNumber" validate:"required,len=10"`
	BirthDate   string `json:"birthDate" validate:"required"`
	CardDate    string `json:"cardDate" validate:"required"`
	VisitNumber string `json:"visitNumber" validate:"required,len=4,numeric"`
	SystolicBP  *int   `json:"systolicBP" validate:"required,gte=1,lte=300"`
	DiastolicBP *int   `json:"diastolicBP" validate:"required,gte=1,lte=200"`
}

// Response DTOs

type SaveBloodPressureResponse struct {
	PersonID uint   `json:"person_id"`
	BPID     uint   `json:"bp_id"`
	BPStatus string `json:"bp_status"`
}
