package entity

import "time"

// LabTest is the parent row of one lab submission. Sub-panels are
// normalized into child tables and inserted only when at least one
// field is filled in.
type LabTest struct {
	TestID        uint      `gorm:"column:test_id;primaryKey" json:"test_id"`
	PersonID      uint      `gorm:"column:person_id;not null;index" json:"person_id"`
	IDNumber      string    `gorm:"column:id_number;type:varchar(10);not null;index" json:"id_number"`
	BirthDate     time.Time `gorm:"column:birth_date;type:date;not null" json:"birth_date"`
	CardDate      string    `gorm:"column:card_date;type:varchar(20);not null" json:"card_date"`
	MedicalSerial string    `gorm:"column:medical_serial;type:varchar(4);not null" json:"medical_serial"`
	DoctorID      string    `gorm:"column:doctor_id;type:varchar(10);not null;index" json:"doctor_id"`
	IPAddress     string    `gorm:"column:ip_address;type:varchar(45)" json:"ip_address"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`

	Person      Person              `gorm:"foreignKey:PersonID;references:PersonID" json:"person,omitempty"`
	Doctor      *Doctor             `gorm:"foreignKey:DoctorID;references:IDNumber" json:"doctor,omitempty"`
	SingleItems []LabTestSingleItem `gorm:"foreignKey:TestID;references:TestID" json:"single_items,omitempty"`
	UrineTest   *LabTestUrine       `gorm:"foreignKey:TestID;references:TestID" json:"urine_test,omitempty"`
	BloodTest   *LabTestBlood       `gorm:"foreignKey:TestID;references:TestID" json:"blood_test,omitempty"`
}

func (LabTest) TableName() string {
	return "lab_test"
}

// LabTestSingleItem is one code/name/result triple.
type LabTestSingleItem struct {
	ItemID     uint   `gorm:"column:item_id;primaryKey" json:"item_id"`
	TestID     uint   `gorm:"column:test_id;not null;index" json:"test_id"`
	TestCode   string `gorm:"column:test_code;type:varchar(20);not null" json:"test_code"`
	TestName   string `gorm:"column:test_name;type:varchar(100);not null" json:"test_name"`
	TestResult string `gorm:"column:test_result;type:varchar(100)" json:"test_result"`
}

func (LabTestSingleItem) TableName() string {
	return "lab_test_single_items"
}

// LabTestUrine is the urinalysis panel, one-to-one with LabTest.
type LabTestUrine struct {
	TestID          uint    `gorm:"column:test_id;primaryKey" json:"test_id"`
	Appearance      *string `gorm:"column:appearance;type:varchar(50)" json:"appearance,omitempty"`
	Color           *string `gorm:"column:color;type:varchar(50)" json:"color,omitempty"`
	ReactionPH      *string `gorm:"column:reaction_ph;type:varchar(20)" json:"reaction_ph,omitempty"`
	Glucose         *string `gorm:"column:glucose;type:varchar(20)" json:"glucose,omitempty"`
	OccultBlood     *string `gorm:"column:occult_blood;type:varchar(20)" json:"occult_blood,omitempty"`
	Protein         *string `gorm:"column:protein;type:varchar(20)" json:"protein,omitempty"`
	Urobilinogen    *string `gorm:"column:urobilinogen;type:varchar(20)" json:"urobilinogen,omitempty"`
	Nitrite         *string `gorm:"column:nitrite;type:varchar(20)" json:"nitrite,omitempty"`
	Leukocyte       *string `gorm:"column:leukocyte;type:varchar(20)" json:"leukocyte,omitempty"`
	Bilirubin       *string `gorm:"column:bilirubin;type:varchar(20)" json:"bilirubin,omitempty"`
	KetoneBody      *string `gorm:"column:ketone_body;type:varchar(20)" json:"ketone_body,omitempty"`
	SpecificGravity *string `gorm:"column:specific_gravity;type:varchar(20)" json:"specific_gravity,omitempty"`
	RBC             *string `gorm:"column:rbc;type:varchar(20)" json:"rbc,omitempty"`
	WBC             *string `gorm:"column:wbc;type:varchar(20)" json:"wbc,omitempty"`
	Clarity         *string `gorm:"column:clarity;type:varchar(50)" json:"clarity,omitempty"`
}

func (LabTestUrine) TableName() string {
	return "lab_test_urine"
}

// LabTestBlood is the hematology panel, one-to-one with LabTest.
type LabTestBlood struct {
	TestID uint    `gorm:"column:test_id;primaryKey" json:"test_id"`
	WBC    *string `gorm:"column:wbc;type:varchar(20)" json:"wbc,omitempty"`
	RBC    *string `gorm:"column:rbc;type:varchar(20)" json:"rbc,omitempty"`
	Hb     *string `gorm:"column:hb;type:varchar(20)" json:"hb,omitempty"`
	Hct    *string `gorm:"column:hct;type:varchar(20)" json:"hct,omitempty"`
	MCH    *string `gorm:"column:mch;type:varchar(20)" json:"mch,omitempty"`
	MCV    *string `gorm:"column:mcv;type:varchar(20)" json:"mcv,omitempty"`
	MCHC   *string `gorm:"column:mchc;type:varchar(20)" json:"mchc,omitempty"`
}

func (LabTestBlood) TableName() string {
	return "lab_test_blood"
}

// LabTestStats is the aggregate row for the stats query.
type LabTestStats struct {
	TotalTests       int64 `gorm:"column:total_tests" json:"total_tests"`
	TotalPersons     int64 `gorm:"column:total_persons" json:"total_persons"`
	TotalSingleItems int64 `gorm:"column:total_single_items" json:"total_single_items"`
	UrineTestCount   int64 `gorm:"column:urine_test_count" json:"urine_test_count"`
	BloodTestCount   int64 `gorm:"column:blood_test_count" json:"blood_test_count"`
	DoctorCount      int64 `gorm:"column:doctor_count" json:"doctor_count"`
}

// LabTestSummary is one row of the grouped listing queries
// (by_doctor, recent, all).
type LabTestSummary struct {
	TestID        uint      `gorm:"column:test_id" json:"test_id"`
	IDNumber      string    `gorm:"column:id_number" json:"id_number"`
	Name          *string   `gorm:"column:name" json:"name"`
	Gender        string    `gorm:"column:gender" json:"gender"`
	BirthDate     time.Time `gorm:"column:birth_date" json:"birth_date"`
	CardDate      string    `gorm:"column:card_date" json:"card_date"`
	MedicalSerial string    `gorm:"column:medical_serial" json:"medical_serial"`
	DoctorName    *string   `gorm:"column:doctor_name" json:"doctor_name"`
	ItemCount     int64     `gorm:"column:item_count" json:"item_count"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}
