package repository

import (
	"context"
	"errors"

	"hospital-records/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// GetHospitalByID retrieves a hospital by ID with its wards
func (r *HospitalRepository) GetHospitalByID(ctx context.Context, id uuid.UUID) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.WithContext(ctx).Preload("Wards").Where("id = ?", id).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &hospital, nil
}

// CreateHospital creates a new hospital
func (r *HospitalRepository) CreateHospital(ctx context.Context, hospital *models.Hospital) error {
	return r.db.WithContext(ctx).Omit("Wards").Create(hospital).Error
}

// UpdateHospital updates name, address and city of an existing hospital
func (r *HospitalRepository) UpdateHospital(ctx context.Context, hospital *models.Hospital) error {
	return r.db.WithContext(ctx).Model(&models.Hospital{}).
		Where("id = ?", hospital.ID).
		Updates(map[string]interface{}{
			"name":    hospital.Name,
			"address": hospital.Address,
			"city":    hospital.City,
		}).Error
}

// DeleteHospital removes a hospital. ErrInUse when wards, staff or patients still reference it.
func (r *HospitalRepository) DeleteHospital(ctx context.Context, id uuid.UUID) error {
	return deleteRecord[models.Hospital](r.db.WithContext(ctx), id)
}
