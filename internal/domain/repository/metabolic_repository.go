package repository

import (
	"community-health-api/internal/domain/entity"

	"gorm.io/gorm"
)

type MetabolicRepository interface {
	Create(db *gorm.DB, screening *entity.MetabolicPrevention) error

	FindByIDNumber(db *gorm.DB, idNumber string) ([]entity.MetabolicPrevention, error)
	Stats(db *gorm.DB) (*entity.MetabolicStats, error)
	// RiskAnalysis groups screenings by one of the fixed risk-factor
	// columns. The riskType must already be allow-list validated; the
	// implementation maps it to a column constant and rejects anything
	// unknown.
	RiskAnalysis(db *gorm.DB, riskType string) ([]entity.MetabolicRiskGroup, error)
	FindRecent(db *gorm.DB, limit int) ([]entity.MetabolicPrevention, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.MetabolicPrevention, error)
	Count(db *gorm.DB) (int64, error)
}
