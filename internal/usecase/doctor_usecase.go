package usecase

import (
	"context"

	"community-health-api/internal/converter"
	"community-health-api/internal/delivery/dto"
	"community-health-api/internal/domain/entity"
	"community-health-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DoctorUsecase interface {
	Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.CreateDoctorResponse, error)
	Update(ctx context.Context, doctorID uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, doctorID uint) error
	GetByID(ctx context.Context, doctorID uint) (*dto.DoctorResponse, error)
	GetAll(ctx context.Context, status string) ([]dto.DoctorResponse, error)
}

type doctorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.CreateDoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.doctorRepo.FindByIDNumber(tx, req.IDNumber)
	if err != nil {
		u.log.Warnf("Failed to look up doctor: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrDoctorIDNumberExists
	}

	status := req.Status
	if status == "" {
		status = entity.DoctorStatusActive
	}

	doctor := &entity.Doctor{
		IDNumber:  req.IDNumber,
		Name:      req.Name,
		Specialty: optional(req.Specialty),
		Phone:     optional(req.Phone),
		Email:     optional(req.Email),
		Status:    status,
	}
	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		// The pre-check races with concurrent creates; the unique index
		// is the real arbiter.
		if isDuplicateKeyError(err, "id_number") {
			return nil, ErrDoctorIDNumberExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.CreateDoctorResponse{DoctorID: doctor.DoctorID}, nil
}

func (u *doctorUsecase) Update(ctx context.Context, doctorID uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByDoctorID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	doctor.Name = req.Name
	doctor.Specialty = optional(req.Specialty)
	doctor.Phone = optional(req.Phone)
	doctor.Email = optional(req.Email)
	if req.Status != "" {
		doctor.Status = req.Status
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

// Delete retires a doctor. The row is kept so historical lab tests
// still resolve their doctor reference.
func (u *doctorUsecase) Delete(ctx context.Context, doctorID uint) error {
	affected, err := u.doctorRepo.SetStatus(u.db.WithContext(ctx), doctorID, entity.DoctorStatusInactive)
	if err != nil {
		u.log.Warnf("Failed to deactivate doctor: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrDoctorNotFound
	}
	return nil
}

func (u *doctorUsecase) GetByID(ctx context.Context, doctorID uint) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAll(ctx context.Context, status string) ([]dto.DoctorResponse, error) {
	if status == "" {
		status = entity.DoctorStatusActive
	}

	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx), status)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return converter.DoctorsToResponses(doctors), nil
}
