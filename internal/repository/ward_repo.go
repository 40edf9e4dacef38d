package repository

import (
	"context"

	"hospital-records/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WardRepository struct {
	db *gorm.DB
}

func NewWardRepo(db *gorm.DB) *WardRepository {
	return &WardRepository{db: db}
}

// GetWardsByHospitalID retrieves all wards owned by a hospital
func (r *WardRepository) GetWardsByHospitalID(ctx context.Context, hospitalID uuid.UUID) ([]models.Ward, error) {
	var wards []models.Ward
	err := r.db.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Order("type ASC").
		Find(&wards).Error
	return wards, err
}

// CreateWard creates a new ward
func (r *WardRepository) CreateWard(ctx context.Context, ward *models.Ward) error {
	return r.db.WithContext(ctx).Omit("Hospital").Create(ward).Error
}
