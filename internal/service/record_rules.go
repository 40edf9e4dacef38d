package service

import (
	"context"
	"errors"
	"fmt"

	"hospital-records/internal/models"
	"hospital-records/internal/repository"

	"github.com/google/uuid"
)

type recordFinder[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
}

// RecordRules checks the references of records written through the admin API
// and derives the fields that follow from them.
type RecordRules struct {
	Hospitals   recordFinder[models.Hospital]
	Wards       recordFinder[models.Ward]
	Doctors     recordFinder[models.Doctor]
	Nurses      recordFinder[models.Nurse]
	Patients    recordFinder[models.Patient]
	Medications recordFinder[models.Medication]
	Diagnoses   recordFinder[models.Diagnosis]
}

func lookup[T any](ctx context.Context, finder recordFinder[T], label string, id uuid.UUID) (*T, error) {
	record, err := finder.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s %s does not exist", ErrInvalidRecord, label, id)
		}
		return nil, err
	}
	return record, nil
}

func (r *RecordRules) PrepareWard(ctx context.Context, ward *models.Ward) error {
	if !ward.Type.IsValid() {
		return fmt.Errorf("%w: %w %q", ErrInvalidRecord, ErrInvalidWardType, ward.Type)
	}
	if ward.MaxCapacity <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrInvalidWardCapacity)
	}
	_, err := lookup(ctx, r.Hospitals, "hospital", ward.HospitalID)
	return err
}

// PrepareDoctor assigns the doctor to the hospital that owns the chosen ward
func (r *RecordRules) PrepareDoctor(ctx context.Context, doctor *models.Doctor) error {
	if !doctor.Speciality.IsValid() {
		return fmt.Errorf("%w: unknown doctor speciality %q", ErrInvalidRecord, doctor.Speciality)
	}
	ward, err := lookup(ctx, r.Wards, "ward", doctor.WardID)
	if err != nil {
		return err
	}
	doctor.HospitalID = ward.HospitalID
	return nil
}

// PrepareNurse assigns the nurse to the hospital that owns the chosen ward
func (r *RecordRules) PrepareNurse(ctx context.Context, nurse *models.Nurse) error {
	if !nurse.Speciality.IsValid() {
		return fmt.Errorf("%w: unknown nurse speciality %q", ErrInvalidRecord, nurse.Speciality)
	}
	ward, err := lookup(ctx, r.Wards, "ward", nurse.WardID)
	if err != nil {
		return err
	}
	nurse.HospitalID = ward.HospitalID
	return nil
}

// PreparePatient requires the ward, when one is given, to belong to the patient's hospital
func (r *RecordRules) PreparePatient(ctx context.Context, patient *models.Patient) error {
	if _, err := lookup(ctx, r.Hospitals, "hospital", patient.HospitalID); err != nil {
		return err
	}
	if patient.WardID != nil {
		ward, err := lookup(ctx, r.Wards, "ward", *patient.WardID)
		if err != nil {
			return err
		}
		if ward.HospitalID != patient.HospitalID {
			return fmt.Errorf("%w: ward %s does not belong to hospital %s", ErrInvalidRecord, ward.ID, patient.HospitalID)
		}
	}
	for _, d := range patient.Diagnoses {
		if _, err := lookup(ctx, r.Diagnoses, "diagnosis", d.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *RecordRules) PrepareDiagnosis(ctx context.Context, diagnosis *models.Diagnosis) error {
	_, err := lookup(ctx, r.Doctors, "doctor", diagnosis.DoctorID)
	return err
}

func (r *RecordRules) PrepareAppointment(ctx context.Context, appointment *models.Appointment) error {
	if !appointment.Status.IsValid() {
		return fmt.Errorf("%w: unknown appointment status %q", ErrInvalidRecord, appointment.Status)
	}
	if _, err := lookup(ctx, r.Patients, "patient", appointment.PatientID); err != nil {
		return err
	}
	if _, err := lookup(ctx, r.Doctors, "doctor", appointment.DoctorID); err != nil {
		return err
	}
	_, err := lookup(ctx, r.Nurses, "nurse", appointment.NurseID)
	return err
}

func (r *RecordRules) PreparePrescription(ctx context.Context, prescription *models.Prescription) error {
	if prescription.EndDate.Before(prescription.StartDate) {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidRecord)
	}
	if _, err := lookup(ctx, r.Patients, "patient", prescription.PatientID); err != nil {
		return err
	}
	if _, err := lookup(ctx, r.Doctors, "doctor", prescription.DoctorID); err != nil {
		return err
	}
	_, err := lookup(ctx, r.Medications, "medication", prescription.MedicationID)
	return err
}

func (r *RecordRules) PrepareSurgery(ctx context.Context, surgery *models.Surgery) error {
	if _, err := lookup(ctx, r.Patients, "patient", surgery.PatientID); err != nil {
		return err
	}
	_, err := lookup(ctx, r.Doctors, "doctor", surgery.DoctorID)
	return err
}
