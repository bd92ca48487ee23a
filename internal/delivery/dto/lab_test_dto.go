package dto

import "time"

// Request DTOs

type SingleTestInput struct {
	TestCode   string `json:"testCode"`
	CustomCode string `json:"customCode"`
	Result     string `json:"result"`
}

// UrineTestInput mirrors the collection form; the specificGravi key is
// the form's historical field name and is kept for compatibility.
type UrineTestInput struct {
	Appearance      string `json:"appearance"`
	Color           string `json:"color"`
	Reaction        string `json:"reaction"`
	Glucose         string `json:"glucose"`
	OccultBlood     string `json:"occultBlood"`
	Protein         string `json:"protein"`
	Urobilinogen    string `json:"urobilinogen"`
	Nitrite         string `json:"nitrite"`
	Leukocyte       string `json:"leukocyte"`
	Bilirubin       string `json:"bilirubin"`
	KetoneBody      string `json:"ketoneBody"`
	SpecificGravity string `json:"specificGravi"`
	RBC             string `json:"rbc"`
	WBC             string `json:"wbc"`
	Clarity         string `json:"clarity"`
}

type BloodTestInput struct {
	WBC  string `json:"wbc"`
	RBC  string `json:"rbc"`
	Hb   string `json:"hb"`
	Hct  string `json:"hct"`
	MCH  string `json:"mch"`
	MCV  string `json:"mcv"`
	MCHC string `json:"mchc"`
}

type SaveLabTestRequest struct {
	IDNumber    string            `json:"idNumber" validate:"required,len=10"`
	BirthDate   string            `json:"birthDate" validate:"required"`
	CardDate    string            `json:"cardDate" validate:"required"`
	VisitNumber string            `json:"visitNumber" validate:"required,len=4"`
	DoctorID    string            `json:"doctorId" validate:"required"`
	SingleTests []SingleTestInput `json:"singleTests"`
	UrineTest   UrineTestInput    `json:"urineTest"`
	BloodTest   BloodTestInput    `json:"bloodTest"`
}

// Response DTOs

type SaveLabTestResponse struct {
	PersonID        uint `json:"person_id"`
	TestID          uint `json:"test_id"`
	TotalItems      int  `json:"total_items"`
	SingleTestCount int  `json:"single_test_count"`
	UrineTestItems  int  `json:"urine_test_items"`
	BloodTestItems  int  `json:"blood_test_items"`
}

type LabTestSingleItemResponse struct {
	ItemID     uint   `json:"item_id"`
	TestCode   string `json:"test_code"`
	TestName   string `json:"test_name"`
	TestResult string `json:"test_result"`
}

type LabTestUrineResponse struct {
	Appearance      *string `json:"appearance"`
	Color           *string `json:"color"`
	ReactionPH      *string `json:"reaction_ph"`
	Glucose         *string `json:"glucose"`
	OccultBlood     *string `json:"occult_blood"`
	Protein         *string `json:"protein"`
	Urobilinogen    *string `json:"urobilinogen"`
	Nitrite         *string `json:"nitrite"`
	Leukocyte       *string `json:"leukocyte"`
	Bilirubin       *string `json:"bilirubin"`
	KetoneBody      *string `json:"ketone_body"`
	SpecificGravity *string `json:"specific_gravity"`
	RBC             *string `json:"rbc"`
	WBC             *string `json:"wbc"`
	Clarity         *string `json:"clarity"`
}

type LabTestBloodResponse struct {
	WBC  *string `json:"wbc"`
	RBC  *string `json:"rbc"`
	Hb   *string `json:"hb"`
	Hct  *string `json:"hct"`
	MCH  *string `json:"mch"`
	MCV  *string `json:"mcv"`
	MCHC *string `json:"mchc"`
}

type LabTestDetailResponse struct {
	TestID          uint                        `json:"test_id"`
	PersonID        uint                        `json:"person_id"`
	IDNumber        string                      `json:"id_number"`
	Name            *string                     `json:"name"`
	Phone           *string                     `json:"phone"`
	Email           *string                     `json:"email"`
	Gender          string                      `json:"gender"`
	BirthDate       string                      `json:"birth_date"`
	Age             int                         `json:"age"`
	CardDate        string                      `json:"card_date"`
	MedicalSerial   string                      `json:"medical_serial"`
	DoctorID        string                      `json:"doctor_id"`
	DoctorName      *string                     `json:"doctor_name"`
	DoctorSpecialty *string                     `json:"doctor_specialty"`
	CreatedAt       time.Time                   `json:"created_at"`
	SingleItems     []LabTestSingleItemResponse `json:"single_items"`
	UrineTest       *LabTestUrineResponse       `json:"urine_test"`
	BloodTest       *LabTestBloodResponse       `json:"blood_test"`
}

type LabTestSummaryItem struct {
	TestID        uint      `json:"test_id"`
	IDNumber      string    `json:"id_number"`
	Name          *string   `json:"name"`
	Gender        string    `json:"gender"`
	BirthDate     string    `json:"birth_date"`
	Age           int       `json:"age"`
	CardDate      string    `json:"card_date"`
	MedicalSerial string    `json:"medical_serial"`
	DoctorName    *string   `json:"doctor_name"`
	ItemCount     int64     `json:"item_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type LabTestListResponse struct {
	Items  []LabTestSummaryItem `json:"items"`
	Total  int64                `json:"total"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}
