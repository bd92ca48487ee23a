package entity

import "time"

// Doctor status values. Deleting a doctor flips the status to
// inactive; rows are never removed.
const (
	DoctorStatusActive   = "active"
	DoctorStatusInactive = "inactive"
)

// Doctor is reference data keyed by the 10-character national ID,
// optionally referenced by lab tests.
type Doctor struct {
	DoctorID  uint      `gorm:"column:doctor_id;primaryKey" json:"doctor_id"`
	IDNumber  string    `gorm:"column:id_number;type:varchar(10);uniqueIndex;not null" json:"id_number"`
	Name      string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Specialty *string   `gorm:"column:specialty;type:varchar(100)" json:"specialty"`
	Phone     *string   `gorm:"column:phone;type:varchar(20)" json:"phone"`
	Email     *string   `gorm:"column:email;type:varchar(100)" json:"email"`
	Status    string    `gorm:"column:status;type:varchar(10);not null;default:active" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}
