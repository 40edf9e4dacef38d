package service

import (
	"context"
	"errors"
	"fmt"

	"hospital-records/internal/models"

	"github.com/google/uuid"
)

var (
	ErrInvalidWardType     = errors.New("invalid ward type")
	ErrInvalidWardCapacity = errors.New("ward capacity must be positive")
)

type hospitalStore interface {
	GetHospitalByID(ctx context.Context, id uuid.UUID) (*models.Hospital, error)
	CreateHospital(ctx context.Context, hospital *models.Hospital) error
	UpdateHospital(ctx context.Context, hospital *models.Hospital) error
	DeleteHospital(ctx context.Context, id uuid.UUID) error
}

type wardStore interface {
	GetWardsByHospitalID(ctx context.Context, hospitalID uuid.UUID) ([]models.Ward, error)
	CreateWard(ctx context.Context, ward *models.Ward) error
}

type HospitalService struct {
	hospitalRepo hospitalStore
	wardRepo     wardStore
	auditRepo    auditRecorder
}

func NewHospitalService(hospitalRepo hospitalStore, wardRepo wardStore, auditRepo auditRecorder) *HospitalService {
	return &HospitalService{
		hospitalRepo: hospitalRepo,
		wardRepo:     wardRepo,
		auditRepo:    auditRepo,
	}
}

// CreateHospital creates a new hospital (admin only)
func (s *HospitalService) CreateHospital(ctx context.Context, hospital *models.Hospital, userID *uuid.UUID) error {
	hospital.ID = uuid.New()
	if err := s.hospitalRepo.CreateHospital(ctx, hospital); err != nil {
		return fmt.Errorf("failed to create hospital: %w", err)
	}

	details := fmt.Sprintf("Created hospital: %s (%s)", hospital.Name, hospital.ID)
	_ = s.auditRepo.CreateAuditLog(ctx, userID, "hospital_create", details)
	return nil
}

// UpdateHospital updates an existing hospital (admin only)
func (s *HospitalService) UpdateHospital(ctx context.Context, hospital *models.Hospital, userID *uuid.UUID) (*models.Hospital, error) {
	existing, err := s.hospitalRepo.GetHospitalByID(ctx, hospital.ID)
	if err != nil {
		return nil, err
	}

	if err := s.hospitalRepo.UpdateHospital(ctx, hospital); err != nil {
		return nil, fmt.Errorf("failed to update hospital: %w", err)
	}

	details := fmt.Sprintf("Updated hospital: %s (%s, old name: %s)", hospital.Name, hospital.ID, existing.Name)
	_ = s.auditRepo.CreateAuditLog(ctx, userID, "hospital_update", details)

	existing.Name = hospital.Name
	existing.Address = hospital.Address
	existing.City = hospital.City
	return existing, nil
}

// DeleteHospital removes a hospital (admin only)
func (s *HospitalService) DeleteHospital(ctx context.Context, id uuid.UUID, userID *uuid.UUID) error {
	hospital, err := s.hospitalRepo.GetHospitalByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.hospitalRepo.DeleteHospital(ctx, id); err != nil {
		return fmt.Errorf("failed to delete hospital: %w", err)
	}

	details := fmt.Sprintf("Deleted hospital: %s (%s)", hospital.Name, id)
	_ = s.auditRepo.CreateAuditLog(ctx, userID, "hospital_delete", details)
	return nil
}

// GetWardsByHospitalID lists the wards of an existing hospital
func (s *HospitalService) GetWardsByHospitalID(ctx context.Context, hospitalID uuid.UUID) ([]models.Ward, error) {
	if _, err := s.hospitalRepo.GetHospitalByID(ctx, hospitalID); err != nil {
		return nil, err
	}
	return s.wardRepo.GetWardsByHospitalID(ctx, hospitalID)
}

// CreateWard adds a ward to an existing hospital (admin only)
func (s *HospitalService) CreateWard(ctx context.Context, ward *models.Ward, userID *uuid.UUID) error {
	if !ward.Type.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidWardType, ward.Type)
	}
	if ward.MaxCapacity <= 0 {
		return ErrInvalidWardCapacity
	}

	hospital, err := s.hospitalRepo.GetHospitalByID(ctx, ward.HospitalID)
	if err != nil {
		return err
	}

	ward.ID = uuid.New()
	if err := s.wardRepo.CreateWard(ctx, ward); err != nil {
		return fmt.Errorf("failed to create ward: %w", err)
	}

	details := fmt.Sprintf("Created %s ward (%s) in hospital %s", ward.Type, ward.ID, hospital.Name)
	_ = s.auditRepo.CreateAuditLog(ctx, userID, "ward_create", details)
	return nil
}
