package seeder

import (
	"context"

	"hospital-records/internal/models"
)

// Writer persists the output of one generation step.
type Writer interface {
	SaveHospitals(ctx context.Context, hospitals []models.Hospital) error
	SaveWards(ctx context.Context, wards []models.Ward) error
	SaveDoctors(ctx context.Context, doctors []models.Doctor) error
	SaveNurses(ctx context.Context, nurses []models.Nurse) error
	SavePatients(ctx context.Context, patients []models.Patient) error
	SaveMedications(ctx context.Context, medications []models.Medication) error
	SaveDiagnoses(ctx context.Context, diagnoses []models.Diagnosis) error
	SaveAppointments(ctx context.Context, appointments []models.Appointment) error
	SavePrescriptions(ctx context.Context, prescriptions []models.Prescription) error
	SaveSurgeries(ctx context.Context, surgeries []models.Surgery) error
}

// Store runs fn inside a single transaction: everything written through the
// Writer is committed when fn returns nil and rolled back otherwise.
type Store interface {
	Transaction(ctx context.Context, fn func(w Writer) error) error
}
