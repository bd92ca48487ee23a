package entity

import "time"

// Person is the canonical identity record behind every submission,
// keyed by the 10-character national ID. It may be created as a
// placeholder (nil name, default gender) by a blood-pressure write
// and completed by a later survey or metabolic write.
type Person struct {
	PersonID  uint      `gorm:"column:person_id;primaryKey" json:"person_id"`
	IDNumber  string    `gorm:"column:id_number;type:varchar(10);uniqueIndex;not null" json:"id_number"`
	Name      *string   `gorm:"column:name;type:varchar(100)" json:"name"`
	BirthDate time.Time `gorm:"column:birth_date;type:date;not null" json:"birth_date"`
	Gender    string    `gorm:"column:gender;type:varchar(2);not null" json:"gender"`
	Phone     *string   `gorm:"column:phone;type:varchar(20)" json:"phone,omitempty"`
	Email     *string   `gorm:"column:email;type:varchar(100)" json:"email,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Person) TableName() string {
	return "personal_info"
}
