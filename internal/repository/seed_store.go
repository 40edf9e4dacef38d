package repository

import (
	"context"

	"hospital-records/internal/models"
	"hospital-records/internal/seeder"

	"gorm.io/gorm"
)

const defaultBatchSize = 200

// SeedStore persists seeding runs through gorm, one database transaction per run.
type SeedStore struct {
	db        *gorm.DB
	batchSize int
}

func NewSeedStore(db *gorm.DB, batchSize int) *SeedStore {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &SeedStore{db: db, batchSize: batchSize}
}

// Transaction implements seeder.Store
func (s *SeedStore) Transaction(ctx context.Context, fn func(w seeder.Writer) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&seedWriter{tx: tx, batchSize: s.batchSize})
	})
}

// seedWriter writes every entity kind through the record repositories bound to tx.
type seedWriter struct {
	tx        *gorm.DB
	batchSize int
}

func save[T any](ctx context.Context, w *seedWriter, records []T) error {
	return NewRecordRepo[T](w.tx, "").SaveAll(ctx, records, w.batchSize)
}

func (w *seedWriter) SaveHospitals(ctx context.Context, hospitals []models.Hospital) error {
	return save(ctx, w, hospitals)
}

func (w *seedWriter) SaveWards(ctx context.Context, wards []models.Ward) error {
	return save(ctx, w, wards)
}

func (w *seedWriter) SaveDoctors(ctx context.Context, doctors []models.Doctor) error {
	return save(ctx, w, doctors)
}

func (w *seedWriter) SaveNurses(ctx context.Context, nurses []models.Nurse) error {
	return save(ctx, w, nurses)
}

func (w *seedWriter) SavePatients(ctx context.Context, patients []models.Patient) error {
	return save(ctx, w, patients)
}

func (w *seedWriter) SaveMedications(ctx context.Context, medications []models.Medication) error {
	return save(ctx, w, medications)
}

func (w *seedWriter) SaveDiagnoses(ctx context.Context, diagnoses []models.Diagnosis) error {
	return save(ctx, w, diagnoses)
}

func (w *seedWriter) SaveAppointments(ctx context.Context, appointments []models.Appointment) error {
	return save(ctx, w, appointments)
}

func (w *seedWriter) SavePrescriptions(ctx context.Context, prescriptions []models.Prescription) error {
	return save(ctx, w, prescriptions)
}

func (w *seedWriter) SaveSurgeries(ctx context.Context, surgeries []models.Surgery) error {
	return save(ctx, w, surgeries)
}
