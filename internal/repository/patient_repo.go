package repository

import (
	"context"

	"hospital-records/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientRepository is the record repository for patients. Writes also keep
// the patient_diagnoses join table in line with Patient.Diagnoses.
type PatientRepository struct {
	*RecordRepository[models.Patient]
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{
		RecordRepository: NewRecordRepo[models.Patient](db, "name ASC", "Diagnoses"),
	}
}

// Create inserts the patient and links the diagnoses listed on it
func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createRecord(tx, patient); err != nil {
			return err
		}
		return linkDiagnoses(tx, patient.ID, patient.Diagnoses)
	})
}

// Update overwrites the patient and replaces its diagnosis links
func (r *PatientRepository) Update(ctx context.Context, id uuid.UUID, patient *models.Patient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateRecord(tx, id, patient); err != nil {
			return err
		}
		if err := unlinkDiagnoses(tx, id); err != nil {
			return err
		}
		return linkDiagnoses(tx, id, patient.Diagnoses)
	})
}

// Delete removes the patient together with its diagnosis links
func (r *PatientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := unlinkDiagnoses(tx, id); err != nil {
			return err
		}
		return deleteRecord[models.Patient](tx, id)
	})
}

func linkDiagnoses(tx *gorm.DB, patientID uuid.UUID, diagnoses []models.Diagnosis) error {
	if len(diagnoses) == 0 {
		return nil
	}
	links := make([]models.PatientDiagnosis, 0, len(diagnoses))
	seen := make(map[uuid.UUID]bool, len(diagnoses))
	for _, d := range diagnoses {
		if seen[d.ID] {
			continue
		}
		seen[d.ID] = true
		links = append(links, models.PatientDiagnosis{PatientID: patientID, DiagnosisID: d.ID})
	}
	return writeError(tx.Create(&links).Error)
}

func unlinkDiagnoses(tx *gorm.DB, patientID uuid.UUID) error {
	return tx.Where("patient_id = ?", patientID).Delete(&models.PatientDiagnosis{}).Error
}
