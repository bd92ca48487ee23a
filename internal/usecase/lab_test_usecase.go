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

// singleTestNames maps the known single-test codes to their display
// names. Unknown codes fall back to the code itself.
var singleTestNames = map[string]string{
	"09005C": "指尖血血糖 One touch Glucose",
	"14065C": "A型流感",
	"14066C": "B型流感",
	"14058C": "RSV 呼吸融合細胞病毒",
	"06505C": "驗孕",
	"14084C": "新型冠狀病毒抗原檢測",
}

type LabTestUsecase interface {
	Save(ctx context.Context, req *dto.SaveLabTestRequest, ipAddress string) (*dto.SaveLabTestResponse, error)
	GetByIDNumber(ctx context.Context, idNumber string) ([]dto.LabTestDetailResponse, error)
	GetByTestID(ctx context.Context, testID uint) (*dto.LabTestDetailResponse, error)
	GetStats(ctx context.Context) (*entity.LabTestStats, error)
	GetByDoctor(ctx context.Context, doctorID string) ([]dto.LabTestSummaryItem, error)
	GetRecent(ctx context.Context, limit int) ([]dto.LabTestSummaryItem, error)
	GetAll(ctx context.Context, limit, offset int) (*dto.LabTestListResponse, error)
}

type labTestUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	personRepo  repository.PersonRepository
	labTestRepo repository.LabTestRepository
}

func NewLabTestUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	personRepo repository.PersonRepository,
	labTestRepo repository.LabTestRepository,
) LabTestUsecase {
	return &labTestUsecase{
		db:          db,
		log:         log,
		personRepo:  personRepo,
		labTestRepo: labTestRepo,
	}
}

func (u *labTestUsecase) Save(ctx context.Context, req *dto.SaveLabTestRequest, ipAddress string) (*dto.SaveLabTestResponse, error) {
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// A lab test never creates the person; the health survey form has
	// to be filled in first.
	person, err := u.personRepo.FindByIDNumber(tx, req.IDNumber)
	if err != nil {
		u.log.Warnf("Failed to find person: %+v", err)
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}

	test := &entity.LabTest{
		PersonID:      person.PersonID,
		IDNumber:      req.IDNumber,
		BirthDate:     birthDate,
		CardDate:      req.CardDate,
		MedicalSerial: req.VisitNumber,
		DoctorID:      req.DoctorID,
		IPAddress:     ipAddress,
	}
	if err := u.labTestRepo.Create(tx, test); err != nil {
		u.log.Warnf("Failed to create lab test: %+v", err)
		return nil, err
	}

	singleCount := 0
	for _, input := range req.SingleTests {
		if input.TestCode == "" && input.Result == "" {
			continue
		}

		code := input.TestCode
		name := ""
		if code == "other" && input.CustomCode != "" {
			code = input.CustomCode
			name = "其他檢驗：" + code
		} else if known, ok := singleTestNames[code]; ok {
			name = known
		} else {
			name = code
		}

		item := &entity.LabTestSingleItem{
			TestID:     test.TestID,
			TestCode:   code,
			TestName:   name,
			TestResult: input.Result,
		}
		if err := u.labTestRepo.CreateSingleItem(tx, item); err != nil {
			u.log.Warnf("Failed to create single test item: %+v", err)
			return nil, err
		}
		singleCount++
	}

	// Panels with no filled-in field are omitted entirely rather than
	// stored as all-null rows.
	urineCount := countFilled(
		req.UrineTest.Appearance, req.UrineTest.Color, req.UrineTest.Reaction,
		req.UrineTest.Glucose, req.UrineTest.OccultBlood, req.UrineTest.Protein,
		req.UrineTest.Urobilinogen, req.UrineTest.Nitrite, req.UrineTest.Leukocyte,
		req.UrineTest.Bilirubin, req.UrineTest.KetoneBody, req.UrineTest.SpecificGravity,
		req.UrineTest.RBC, req.UrineTest.WBC, req.UrineTest.Clarity,
	)
	if urineCount > 0 {
		urine := &entity.LabTestUrine{
			TestID:          test.TestID,
			Appearance:      optional(req.UrineTest.Appearance),
			Color:           optional(req.UrineTest.Color),
			ReactionPH:      optional(req.UrineTest.Reaction),
			Glucose:         optional(req.UrineTest.Glucose),
			OccultBlood:     optional(req.UrineTest.OccultBlood),
			Protein:         optional(req.UrineTest.Protein),
			Urobilinogen:    optional(req.UrineTest.Urobilinogen),
			Nitrite:         optional(req.UrineTest.Nitrite),
			Leukocyte:       optional(req.UrineTest.Leukocyte),
			Bilirubin:       optional(req.UrineTest.Bilirubin),
			KetoneBody:      optional(req.UrineTest.KetoneBody),
			SpecificGravity: optional(req.UrineTest.SpecificGravity),
			RBC:             optional(req.UrineTest.RBC),
			WBC:             optional(req.UrineTest.WBC),
			Clarity:         optional(req.UrineTest.Clarity),
		}
		if err := u.labTestRepo.CreateUrineTest(tx, urine); err != nil {
			u.log.Warnf("Failed to create urine test: %+v", err)
			return nil, err
		}
	}

	bloodCount := countFilled(
		req.BloodTest.WBC, req.BloodTest.RBC, req.BloodTest.Hb, req.BloodTest.Hct,
		req.BloodTest.MCH, req.BloodTest.MCV, req.BloodTest.MCHC,
	)
	if bloodCount > 0 {
		blood := &entity.LabTestBlood{
			TestID: test.TestID,
			WBC:    optional(req.BloodTest.WBC),
			RBC:    optional(req.BloodTest.RBC),
			Hb:     optional(req.BloodTest.Hb),
			Hct:    optional(req.BloodTest.Hct),
			MCH:    optional(req.BloodTest.MCH),
			MCV:    optional(req.BloodTest.MCV),
			MCHC:   optional(req.BloodTest.MCHC),
		}
		if err := u.labTestRepo.CreateBloodTest(tx, blood); err != nil {
			u.log.Warnf("Failed to create blood test: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	totalItems := singleCount
	if urineCount > 0 {
		totalItems++
	}
	if bloodCount > 0 {
		totalItems++
	}

	return &dto.SaveLabTestResponse{
		PersonID:        person.PersonID,
		TestID:          test.TestID,
		TotalItems:      totalItems,
		SingleTestCount: singleCount,
		UrineTestItems:  urineCount,
		BloodTestItems:  bloodCount,
	}, nil
}

func (u *labTestUsecase) GetByIDNumber(ctx context.Context, idNumber string) ([]dto.LabTestDetailResponse, error) {
	if idNumber == "" {
		return nil, ErrMissingIDNumber
	}

	tests, err := u.labTestRepo.FindByIDNumber(u.db.WithContext(ctx), idNumber)
	if err != nil {
		u.log.Warnf("Failed to find lab tests: %+v", err)
		return nil, err
	}
	if len(tests) == 0 {
		return nil, ErrLabTestNotFound
	}

	return converter.LabTestsToDetailResponses(tests), nil
}

func (u *labTestUsecase) GetByTestID(ctx context.Context, testID uint) (*dto.LabTestDetailResponse, error) {
	if testID == 0 {
		return nil, ErrMissingTestID
	}

	test, err := u.labTestRepo.FindByTestID(u.db.WithContext(ctx), testID)
	if err != nil {
		u.log.Warnf("Failed to find lab test: %+v", err)
		return nil, err
	}
	if test == nil {
		return nil, ErrLabTestNotFound
	}

	return converter.LabTestToDetailResponse(test), nil
}

func (u *labTestUsecase) GetStats(ctx context.Context) (*entity.LabTestStats, error) {
	stats, err := u.labTestRepo.Stats(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to compute lab test stats: %+v", err)
		return nil, err
	}
	return stats, nil
}

func (u *labTestUsecase) GetByDoctor(ctx context.Context, doctorID string) ([]dto.LabTestSummaryItem, error) {
	if doctorID == "" {
		return nil, ErrMissingDoctorID
	}

	rows, err := u.labTestRepo.FindByDoctor(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find lab tests by doctor: %+v", err)
		return nil, err
	}

	return converter.LabTestSummariesToItems(rows), nil
}

func (u *labTestUsecase) GetRecent(ctx context.Context, limit int) ([]dto.LabTestSummaryItem, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	rows, err := u.labTestRepo.FindRecent(u.db.WithContext(ctx), limit)
	if err != nil {
		u.log.Warnf("Failed to find recent lab tests: %+v", err)
		return nil, err
	}

	return converter.LabTestSummariesToItems(rows), nil
}

func (u *labTestUsecase) GetAll(ctx context.Context, limit, offset int) (*dto.LabTestListResponse, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	db := u.db.WithContext(ctx)
	rows, err := u.labTestRepo.FindAll(db, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list lab tests: %+v", err)
		return nil, err
	}

	total, err := u.labTestRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count lab tests: %+v", err)
		return nil, err
	}

	return &dto.LabTestListResponse{
		Items:  converter.LabTestSummariesToItems(rows),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func countFilled(values ...string) int {
	n := 0
	for _, v := range values {
		if v != "" {
			n++
		}
	}
	return n
}
