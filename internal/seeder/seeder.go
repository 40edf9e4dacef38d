// Package seeder generates and persists a referentially consistent synthetic
// hospital dataset in a single transaction.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital-records/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Entity kinds reported in a seeding result.
const (
	KindHospitals     = "hospitals"
	KindWards         = "wards"
	KindDoctors       = "doctors"
	KindNurses        = "nurses"
	KindPatients      = "patients"
	KindMedications   = "medications"
	KindDiagnoses     = "diagnoses"
	KindAppointments  = "appointments"
	KindPrescriptions = "prescriptions"
	KindSurgeries     = "surgeries"
)

// Kinds lists the entity kinds in generation order.
var Kinds = []string{
	KindHospitals, KindWards, KindDoctors, KindNurses, KindPatients,
	KindMedications, KindDiagnoses, KindAppointments, KindPrescriptions, KindSurgeries,
}

const maxNameAttempts = 100

var (
	ErrNegativeCount = errors.New("seed counts must not be negative")
	ErrEmptyPool     = errors.New("nothing to reference")
)

// Counts are the caller-controlled targets of a seeding run. Diagnoses,
// prescriptions and surgeries are derived from Patients.
type Counts struct {
	Hospitals    int `json:"hospitals"`
	Patients     int `json:"patients"`
	Doctors      int `json:"doctors"`
	Nurses       int `json:"nurses"`
	Appointments int `json:"appointments"`
}

func (c Counts) validate() error {
	if c.Hospitals < 0 || c.Patients < 0 || c.Doctors < 0 || c.Nurses < 0 || c.Appointments < 0 {
		return fmt.Errorf("%w: %+v", ErrNegativeCount, c)
	}
	return nil
}

type Seeder struct {
	store Store
	rnd   Random
	now   func() time.Time
	log   *zap.SugaredLogger
}

type Option func(*Seeder)

// WithRandom replaces the default gofakeit-backed randomness provider.
func WithRandom(rnd Random) Option {
	return func(s *Seeder) { s.rnd = rnd }
}

// WithClock sets the time source used to anchor generated dates.
func WithClock(now func() time.Time) Option {
	return func(s *Seeder) { s.now = now }
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(s *Seeder) { s.log = log }
}

func New(store Store, opts ...Option) *Seeder {
	s := &Seeder{
		store: store,
		rnd:   DefaultRandom(),
		now:   time.Now,
		log:   zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed generates and persists a full dataset for the given counts and returns
// the number of persisted entities per kind. Nothing is persisted on error.
func (s *Seeder) Seed(ctx context.Context, counts Counts) (map[string]int, error) {
	if err := counts.validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	var results map[string]int

	err := s.store.Transaction(ctx, func(w Writer) error {
		r := &run{
			ctx:     ctx,
			w:       w,
			rnd:     s.rnd,
			log:     s.log,
			today:   time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
			results: make(map[string]int, len(Kinds)),
		}
		if err := r.execute(counts); err != nil {
			return err
		}
		results = r.results
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("bulk seed completed", "counts", counts, "results", results)
	return results, nil
}

// run holds the in-memory generation buffers of one seeding run.
type run struct {
	ctx   context.Context
	w     Writer
	rnd   Random
	log   *zap.SugaredLogger
	today time.Time

	hospitals     []models.Hospital
	wards         []models.Ward
	doctors       []models.Doctor
	nurses        []models.Nurse
	patients      []models.Patient
	medications   []models.Medication
	diagnoses     []models.Diagnosis
	appointments  []models.Appointment
	prescriptions []models.Prescription
	surgeries     []models.Surgery

	results map[string]int
}

func (r *run) execute(c Counts) error {
	steps := []struct {
		kind string
		fn   func() (int, error)
	}{
		{KindHospitals, func() (int, error) { return r.generateHospitals(c.Hospitals) }},
		{KindWards, r.generateWards},
		{KindDoctors, func() (int, error) { return r.generateDoctors(c.Doctors) }},
		{KindNurses, func() (int, error) { return r.generateNurses(c.Nurses) }},
		{KindPatients, func() (int, error) { return r.generatePatients(c.Patients) }},
		{KindMedications, r.generateMedications},
		{KindDiagnoses, func() (int, error) { return r.generateDiagnoses(c.Patients / 2) }},
		{KindAppointments, func() (int, error) { return r.generateAppointments(c.Appointments) }},
		{KindPrescriptions, func() (int, error) { return r.generatePrescriptions(c.Patients / 3) }},
		{KindSurgeries, func() (int, error) { return r.generateSurgeries(c.Patients / 10) }},
	}

	for _, step := range steps {
		n, err := step.fn()
		if err != nil {
			return fmt.Errorf("seed %s: %w", step.kind, err)
		}
		r.results[step.kind] = n
		r.log.Debugw("seed step done", "kind", step.kind, "count", n)
	}
	return nil
}

func requirePool(count int, pool string, size int) error {
	if count > 0 && size == 0 {
		return fmt.Errorf("%w: %d requested but no %s were generated", ErrEmptyPool, count, pool)
	}
	return nil
}

func (r *run) daysFromToday(days int) time.Time {
	return r.today.AddDate(0, 0, days)
}

func (r *run) personName() string {
	return pick(r.rnd, firstNames) + " " + pick(r.rnd, lastNames)
}

func (r *run) generateHospitals(count int) (int, error) {
	used := make(map[string]bool, count)
	r.hospitals = make([]models.Hospital, 0, count)

	for i := 0; i < count; i++ {
		city := pick(r.rnd, cities)
		var name string
		// Only the type is redrawn; once a city's types are used up, a
		// duplicate name is accepted after maxNameAttempts.
		for attempt := 0; attempt < maxNameAttempts; attempt++ {
			name = fmt.Sprintf("%s %s Hospital", city, pick(r.rnd, hospitalTypes))
			if !used[name] {
				break
			}
		}
		used[name] = true

		r.hospitals = append(r.hospitals, models.Hospital{
			ID:      uuid.New(),
			Name:    name,
			City:    city,
			Address: fmt.Sprintf("%s %d", pick(r.rnd, streetNames), r.rnd.IntBetween(1, 201)),
		})
	}

	if err := r.w.SaveHospitals(r.ctx, r.hospitals); err != nil {
		return 0, err
	}
	return len(r.hospitals), nil
}

func (r *run) generateWards() (int, error) {
	for i := range r.hospitals {
		hospital := &r.hospitals[i]
		wardCount := r.rnd.IntBetween(2, 5)

		hospitalWards := make([]models.Ward, 0, wardCount)
		for j := 0; j < wardCount; j++ {
			hospitalWards = append(hospitalWards, models.Ward{
				ID:          uuid.New(),
				HospitalID:  hospital.ID,
				Type:        pick(r.rnd, models.WardTypes),
				MaxCapacity: r.rnd.IntBetween(15, 50),
			})
		}
		hospital.Wards = hospitalWards
		r.wards = append(r.wards, hospitalWards...)
	}

	if err := r.w.SaveWards(r.ctx, r.wards); err != nil {
		return 0, err
	}
	return len(r.wards), nil
}

func (r *run) generateDoctors(count int) (int, error) {
	if err := requirePool(count, "wards", len(r.wards)); err != nil {
		return 0, err
	}

	r.doctors = make([]models.Doctor, 0, count)
	for i := 0; i < count; i++ {
		ward := pick(r.rnd, r.wards)
		r.doctors = append(r.doctors, models.Doctor{
			ID:         uuid.New(),
			Name:       "Dr. " + r.personName(),
			Speciality: pick(r.rnd, models.DoctorSpecialities),
			WardID:     ward.ID,
			HospitalID: ward.HospitalID,
		})
	}

	if err := r.w.SaveDoctors(r.ctx, r.doctors); err != nil {
		return 0, err
	}
	return len(r.doctors), nil
}

func (r *run) generateNurses(count int) (int, error) {
	if err := requirePool(count, "wards", len(r.wards)); err != nil {
		return 0, err
	}

	r.nurses = make([]models.Nurse, 0, count)
	for i := 0; i < count; i++ {
		ward := pick(r.rnd, r.wards)
		r.nurses = append(r.nurses, models.Nurse{
			ID:         uuid.New(),
			Name:       "Nurse " + r.personName(),
			Speciality: pick(r.rnd, models.NurseSpecialities),
			WardID:     ward.ID,
			HospitalID: ward.HospitalID,
		})
	}

	if err := r.w.SaveNurses(r.ctx, r.nurses); err != nil {
		return 0, err
	}
	return len(r.nurses), nil
}

func (r *run) generatePatients(count int) (int, error) {
	if err := requirePool(count, "hospitals", len(r.hospitals)); err != nil {
		return 0, err
	}

	r.patients = make([]models.Patient, 0, count)
	for i := 0; i < count; i++ {
		patient := models.Patient{
			ID:     uuid.New(),
			Name:   r.personName(),
			Gender: pick(r.rnd, genders),
			DateOfBirth: time.Date(
				r.rnd.IntBetween(1920, 2011),
				time.Month(r.rnd.IntBetween(1, 13)),
				r.rnd.IntBetween(1, 29),
				0, 0, 0, 0, time.UTC,
			),
		}

		hospital := pick(r.rnd, r.hospitals)
		patient.HospitalID = hospital.ID
		if len(hospital.Wards) > 0 {
			wardID := pick(r.rnd, hospital.Wards).ID
			patient.WardID = &wardID
		}

		r.patients = append(r.patients, patient)
	}

	if err := r.w.SavePatients(r.ctx, r.patients); err != nil {
		return 0, err
	}
	return len(r.patients), nil
}

func (r *run) generateMedications() (int, error) {
	r.medications = make([]models.Medication, 0, len(MedicationNames))
	for _, name := range MedicationNames {
		r.medications = append(r.medications, models.Medication{
			ID:     uuid.New(),
			Name:   name,
			Dosage: pick(r.rnd, dosages),
		})
	}

	if err := r.w.SaveMedications(r.ctx, r.medications); err != nil {
		return 0, err
	}
	return len(r.medications), nil
}

func (r *run) generateDiagnoses(count int) (int, error) {
	if err := requirePool(count, "doctors", len(r.doctors)); err != nil {
		return 0, err
	}

	r.diagnoses = make([]models.Diagnosis, 0, count)
	for i := 0; i < count; i++ {
		r.diagnoses = append(r.diagnoses, models.Diagnosis{
			ID:          uuid.New(),
			Description: pick(r.rnd, diagnosisDescriptions),
			Date:        r.daysFromToday(-r.rnd.IntBetween(0, 365)),
			DoctorID:    pick(r.rnd, r.doctors).ID,
		})
	}

	if err := r.w.SaveDiagnoses(r.ctx, r.diagnoses); err != nil {
		return 0, err
	}
	return len(r.diagnoses), nil
}

func (r *run) generateAppointments(count int) (int, error) {
	for _, pool := range []struct {
		name string
		size int
	}{{"patients", len(r.patients)}, {"doctors", len(r.doctors)}, {"nurses", len(r.nurses)}} {
		if err := requirePool(count, pool.name, pool.size); err != nil {
			return 0, err
		}
	}

	r.appointments = make([]models.Appointment, 0, count)
	for i := 0; i < count; i++ {
		r.appointments = append(r.appointments, models.Appointment{
			ID:        uuid.New(),
			PatientID: pick(r.rnd, r.patients).ID,
			DoctorID:  pick(r.rnd, r.doctors).ID,
			NurseID:   pick(r.rnd, r.nurses).ID,
			Status:    pick(r.rnd, models.AppointmentStatuses),
			Reason:    pick(r.rnd, appointmentReasons),
			Date:      r.daysFromToday(r.rnd.IntBetween(-180, 180)),
		})
	}

	if err := r.w.SaveAppointments(r.ctx, r.appointments); err != nil {
		return 0, err
	}
	return len(r.appointments), nil
}

func (r *run) generatePrescriptions(count int) (int, error) {
	if err := requirePool(count, "doctors", len(r.doctors)); err != nil {
		return 0, err
	}

	r.prescriptions = make([]models.Prescription, 0, count)
	for i := 0; i < count; i++ {
		start := r.daysFromToday(-r.rnd.IntBetween(0, 90))
		r.prescriptions = append(r.prescriptions, models.Prescription{
			ID:           uuid.New(),
			PatientID:    pick(r.rnd, r.patients).ID,
			DoctorID:     pick(r.rnd, r.doctors).ID,
			MedicationID: pick(r.rnd, r.medications).ID,
			StartDate:    start,
			EndDate:      start.AddDate(0, 0, r.rnd.IntBetween(7, 30)),
		})
	}

	if err := r.w.SavePrescriptions(r.ctx, r.prescriptions); err != nil {
		return 0, err
	}
	return len(r.prescriptions), nil
}

func (r *run) generateSurgeries(count int) (int, error) {
	if err := requirePool(count, "doctors", len(r.doctors)); err != nil {
		return 0, err
	}

	r.surgeries = make([]models.Surgery, 0, count)
	for i := 0; i < count; i++ {
		r.surgeries = append(r.surgeries, models.Surgery{
			ID:          uuid.New(),
			PatientID:   pick(r.rnd, r.patients).ID,
			DoctorID:    pick(r.rnd, r.doctors).ID,
			Description: pick(r.rnd, surgeryDescriptions),
			Date:        r.daysFromToday(r.rnd.IntBetween(-365, 365)),
		})
	}

	if err := r.w.SaveSurgeries(r.ctx, r.surgeries); err != nil {
		return 0, err
	}
	return len(r.surgeries), nil
}
