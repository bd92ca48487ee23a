package repository

import (
	"errors"

	"community-health-api/internal/domain/entity"
	domainRepo "community-health-api/internal/domain/repository"

	"gorm.io/gorm"
)

type healthSurveyRepository struct{}

func NewHealthSurveyRepository() domainRepo.HealthSurveyRepository {
	return &healthSurveyRepository{}
}

func (r *healthSurveyRepository) FindByPersonID(db *gorm.DB, personID uint) (*entity.HealthSurvey, error) {
	var survey entity.HealthSurvey
	err := db.Where("person_id = ?", personID).First(&survey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &survey, nil
}

func (r *healthSurveyRepository) Create(db *gorm.DB, survey *entity.HealthSurvey) error {
	return db.Create(survey).Error
}

func (r *healthSurveyRepository) Update(db *gorm.DB, survey *entity.HealthSurvey) error {
	return db.Save(survey).Error
}

func (r *healthSurveyRepository) FindDetailByIDNumber(db *gorm.DB, idNumber string) (*entity.HealthSurvey, error) {
	var survey entity.HealthSurvey
	err := db.Joins("Person").
		Where("\"Person\".id_number = ?", idNumber).
		First(&survey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &survey, nil
}

func (r *healthSurveyRepository) Stats(db *gorm.DB) (*entity.HealthSurveyStats, error) {
	var stats entity.HealthSurveyStats
	err := db.Table("personal_info pi").
		Select(`COUNT(DISTINCT pi.person_id) AS total_persons,
			COUNT(hs.survey_id) AS total_surveys,
			AVG(DATE_PART('year', AGE(CURRENT_DATE, pi.birth_date))) AS avg_age,
			AVG(hs.height) AS avg_height,
			AVG(hs.weight) AS avg_weight,
			AVG(hs.weight / POWER(hs.height / 100, 2)) AS avg_bmi,
			AVG(hs.systolic_bp) AS avg_systolic_bp,
			AVG(hs.diastolic_bp) AS avg_diastolic_bp`).
		Joins("LEFT JOIN health_survey hs ON pi.person_id = hs.person_id").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *healthSurveyRepository) FindByCity(db *gorm.DB, city string) ([]entity.HealthSurvey, error) {
	var surveys []entity.HealthSurvey
	err := db.Joins("Person").
		Where("health_survey.city = ?", city).
		Order("health_survey.submitted_at DESC").
		Find(&surveys).Error
	if err != nil {
		return nil, err
	}
	return surveys, nil
}

func (r *healthSurveyRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.HealthSurvey, error) {
	var surveys []entity.HealthSurvey
	err := db.Joins("Person").
		Order("health_survey.submitted_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&surveys).Error
	if err != nil {
		return nil, err
	}
	return surveys, nil
}

func (r *healthSurveyRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.HealthSurvey{}).Count(&total).Error
	return total, err
}
