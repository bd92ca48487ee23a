package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrPersonNotFound            = errors.New("person not found")
	ErrSurveyNotFound            = errors.New("health survey not found")
	ErrLabTestNotFound           = errors.New("lab test not found")
	ErrMetabolicNotFound         = errors.New("metabolic screening not found")
	ErrDoctorNotFound            = errors.New("doctor not found")
	ErrDoctorIDNumberExists      = errors.New("doctor id number already exists")
	ErrInvalidBirthDate          = errors.New("invalid birth date")
	ErrSystolicNotAboveDiastolic = errors.New("systolic must be greater than diastolic")
	ErrInvalidRiskType           = errors.New("invalid risk type")
	ErrMissingIDNumber           = errors.New("id number is required")
	ErrMissingCity               = errors.New("city is required")
	ErrMissingTestID             = errors.New("test id is required")
	ErrMissingDoctorID           = errors.New("doctor id is required")
)

const birthDateLayout = "2006-01-02"

func parseBirthDate(value string) (time.Time, error) {
	t, err := time.Parse(birthDateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidBirthDate
	}
	return t, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
