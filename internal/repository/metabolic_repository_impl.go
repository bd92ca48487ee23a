package repository

import (
	"fmt"

	"community-health-api/internal/domain/entity"
	domainRepo "community-health-api/internal/domain/repository"

	"gorm.io/gorm"
)

// riskColumns is the fixed allow-list for the grouped risk analysis.
// Caller input never reaches the SQL text directly.
var riskColumns = map[string]string{
	"smoking":   "risk_smoking",
	"betel_nut": "risk_betel_nut",
	"exercise":  "risk_exercise",
}

type metabolicRepository struct{}

func NewMetabolicRepository() domainRepo.MetabolicRepository {
	return &metabolicRepository{}
}

func (r *metabolicRepository) Create(db *gorm.DB, screening *entity.MetabolicPrevention) error {
	return db.Omit("Person").Create(screening).Error
}

func (r *metabolicRepository) FindByIDNumber(db *gorm.DB, idNumber string) ([]entity.MetabolicPrevention, error) {
	var screenings []entity.MetabolicPrevention
	err := db.Preload("Person").
		Where("id_number = ?", idNumber).
		Order("created_at DESC").
		Find(&screenings).Error
	if err != nil {
		return nil, err
	}
	return screenings, nil
}

func (r *metabolicRepository) Stats(db *gorm.DB) (*entity.MetabolicStats, error) {
	var stats entity.MetabolicStats
	err := db.Model(&entity.MetabolicPrevention{}).
		Select(`COUNT(*) AS total_records,
			AVG(bmi) AS avg_bmi,
			AVG(systolic_bp) AS avg_systolic_bp,
			AVG(diastolic_bp) AS avg_diastolic_bp,
			AVG(fasting_glucose) AS avg_fasting_glucose,
			AVG(total_cholesterol) AS avg_total_cholesterol,
			SUM(CASE WHEN risk_smoking != '1' THEN 1 ELSE 0 END) AS smoking_count,
			SUM(CASE WHEN risk_betel_nut != '1' THEN 1 ELSE 0 END) AS betel_nut_count,
			SUM(CASE WHEN risk_exercise = '1' THEN 1 ELSE 0 END) AS no_exercise_count,
			SUM(CASE WHEN bmi >= 24 THEN 1 ELSE 0 END) AS overweight_count,
			SUM(CASE WHEN systolic_bp >= 140 OR diastolic_bp >= 90 THEN 1 ELSE 0 END) AS hypertension_count`).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *metabolicRepository) RiskAnalysis(db *gorm.DB, riskType string) ([]entity.MetabolicRiskGroup, error) {
	column, ok := riskColumns[riskType]
	if !ok {
		return nil, fmt.Errorf("unknown risk type: %s", riskType)
	}

	var groups []entity.MetabolicRiskGroup
	err := db.Model(&entity.MetabolicPrevention{}).
		Select(fmt.Sprintf(`%s AS risk_level,
			COUNT(*) AS count,
			AVG(bmi) AS avg_bmi,
			AVG(systolic_bp) AS avg_systolic_bp,
			AVG(diastolic_bp) AS avg_diastolic_bp,
			AVG(fasting_glucose) AS avg_fasting_glucose`, column)).
		Group(column).
		Order(column).
		Scan(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *metabolicRepository) FindRecent(db *gorm.DB, limit int) ([]entity.MetabolicPrevention, error) {
	var screenings []entity.MetabolicPrevention
	err := db.Order("created_at DESC").
		Limit(limit).
		Find(&screenings).Error
	if err != nil {
		return nil, err
	}
	return screenings, nil
}

func (r *metabolicRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.MetabolicPrevention, error) {
	var screenings []entity.MetabolicPrevention
	err := db.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&screenings).Error
	if err != nil {
		return nil, err
	}
	return screenings, nil
}

func (r *metabolicRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.MetabolicPrevention{}).Count(&total).Error
	return total, err
}
