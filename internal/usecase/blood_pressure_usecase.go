package usecase

import (
	"context"

	"community-health-api/internal/delivery/dto"
	"community-health-api/internal/domain/entity"
	"community-health-api/internal/domain/repository"
	"community-health-api/pkg/vitals"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type BloodPressureUsecase interface {
	Save(ctx context.Context, req *dto.SaveBloodPressureRequest, ipAddress string) (*dto.SaveBloodPressureResponse, error)
}

type bloodPressureUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	personResolver PersonResolver
	bpRepo         repository.BloodPressureRepository
}

func NewBloodPressureUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	personResolver PersonResolver,
	bpRepo repository.BloodPressureRepository,
) BloodPressureUsecase {
	return &bloodPressureUsecase{
		db:             db,
		log:            log,
		personResolver: personResolver,
		bpRepo:         bpRepo,
	}
}

func (u *bloodPressureUsecase) Save(ctx context.Context, req *dto.SaveBloodPressureRequest, ipAddress string) (*dto.SaveBloodPressureResponse, error) {
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, err
	}
	if *req.SystolicBP <= *req.DiastolicBP {
		return nil, ErrSystolicNotAboveDiastolic
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// The station form carries no name or gender, so an unknown ID gets
	// a placeholder record here and only the birth date of a known one
	// may be corrected.
	person, err := u.personResolver.Resolve(tx, PersonInput{
		IDNumber:  req.IDNumber,
		BirthDate: birthDate,
	}, OverwriteOnChange)
	if err != nil {
		u.log.Warnf("Failed to resolve person: %+v", err)
		return nil, err
	}

	reading := &entity.BloodPressure{
		PersonID:    person.PersonID,
		IDNumber:    req.IDNumber,
		BirthDate:   birthDate,
		CardDate:    req.CardDate,
		VisitNumber: req.VisitNumber,
		SystolicBP:  *req.SystolicBP,
		DiastolicBP: *req.DiastolicBP,
		IPAddress:   ipAddress,
	}
	if err := u.bpRepo.Create(tx, reading); err != nil {
		u.log.Warnf("Failed to create blood pressure reading: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.SaveBloodPressureResponse{
		PersonID: person.PersonID,
		BPID:     reading.BPID,
		BPStatus: vitals.BloodPressureStatus(reading.SystolicBP, reading.DiastolicBP),
	}, nil
}
