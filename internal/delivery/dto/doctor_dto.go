package dto

import "time"

// Request DTOs

type CreateDoctorRequest struct {
	IDNumber  string `json:"idNumber" validate:"required,len=10"`
	Name      string `json:"name" validate:"required"`
	Specialty string `json:"specialty" validate:"omitempty"`
	Phone     string `json:"phone" validate:"omitempty"`
	Email     string `json:"email" validate:"omitempty,email"`
	Status    string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateDoctorRequest struct {
	Name      string `json:"name" validate:"required"`
	Specialty string `json:"specialty" validate:"omitempty"`
	Phone     string `json:"phone" validate:"omitempty"`
	Email     string `json:"email" validate:"omitempty,email"`
	Status    string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Response DTOs

type CreateDoctorResponse struct {
	DoctorID uint `json:"doctor_id"`
}

type DoctorResponse struct {
	DoctorID  uint      `json:"doctor_id"`
	IDNumber  string    `json:"id_number"`
	Name      string    `json:"name"`
	Specialty *string   `json:"specialty"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
