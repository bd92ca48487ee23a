package entity

import "time"

// BloodPressure is an append-only reading; the status label is
// derived on the response and never stored.
type BloodPressure struct {
	BPID        uint      `gorm:"column:bp_id;primaryKey" json:"bp_id"`
	PersonID    uint      `gorm:"column:person_id;not null;index" json:"person_id"`
	IDNumber    string    `gorm:"column:id_number;type:varchar(10);not null;index" json:"id_number"`
	BirthDate   time.Time `gorm:"column:birth_date;type:date;not null" json:"birth_date"`
	CardDate    string    `gorm:"column:card_date;type:varchar(20);not null" json:"card_date"`
	VisitNumber string    `gorm:"column:visit_number;type:varchar(4);not null" json:"visit_number"`
	SystolicBP  int       `gorm:"column:systolic_bp;not null" json:"systolic_bp"`
	DiastolicBP int       `gorm:"column:diastolic_bp;not null" json:"diastolic_bp"`
	IPAddress   string    `gorm:"column:ip_address;type:varchar(45)" json:"ip_address"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`

	Person Person `gorm:"foreignKey:PersonID;references:PersonID" json:"person,omitempty"`
}

func (BloodPressure) TableName() string {
	return "blood_pressure"
}
