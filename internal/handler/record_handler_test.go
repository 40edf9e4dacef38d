package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"hospital-records/internal/middleware"
	"hospital-records/internal/models"
	"hospital-records/internal/repository"
	"hospital-records/internal/seeder"
	"hospital-records/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type recordEnv struct {
	*testEnv
	db        *gorm.DB
	hospitals []models.Hospital
	wards     []models.Ward
}

func newRecordEnv(t *testing.T) *recordEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.All()...))

	_, err = seeder.New(repository.NewSeedStore(db, 0)).Seed(context.Background(), seeder.Counts{
		Hospitals: 2, Patients: 4, Doctors: 2, Nurses: 2, Appointments: 2,
	})
	require.NoError(t, err)

	audit := &fakeAudit{}
	hospitals := repository.NewRecordRepo[models.Hospital](db, "name ASC")
	wards := repository.NewRecordRepo[models.Ward](db, "hospital_id ASC")
	doctors := repository.NewRecordRepo[models.Doctor](db, "name ASC")
	nurses := repository.NewRecordRepo[models.Nurse](db, "name ASC")
	patients := repository.NewPatientRepo(db)
	medications := repository.NewRecordRepo[models.Medication](db, "name ASC")
	diagnoses := repository.NewRecordRepo[models.Diagnosis](db, "diagnosis_date DESC")
	prescriptions := repository.NewRecordRepo[models.Prescription](db, "start_date DESC")
	rules := &service.RecordRules{
		Hospitals: hospitals, Wards: wards, Doctors: doctors, Nurses: nurses,
		Patients: patients, Medications: medications, Diagnoses: diagnoses,
	}

	r := gin.New()
	api := r.Group("/api", middleware.AuthMiddleware())
	guard := middleware.RequireAdmin()
	NewRecordHandler("doctors", "Doctor", service.NewRecordService[models.Doctor](doctors,
		service.WithRules(rules.PrepareDoctor), service.WithAudit[models.Doctor]("doctor", audit)),
		BindRequest[models.Doctor, DoctorRequest]).Register(api, guard)
	NewRecordHandler("patients", "Patient", service.NewRecordService[models.Patient](patients,
		service.WithRules(rules.PreparePatient), service.WithAudit[models.Patient]("patient", audit)),
		BindRequest[models.Patient, PatientRequest]).Register(api, guard)
	NewRecordHandler("medications", "Medication", service.NewRecordService[models.Medication](medications,
		service.WithAudit[models.Medication]("medication", audit)),
		BindRequest[models.Medication, MedicationRequest]).Register(api, guard)
	NewRecordHandler("prescriptions", "Prescription", service.NewRecordService[models.Prescription](prescriptions,
		service.WithRules(rules.PreparePrescription), service.WithAudit[models.Prescription]("prescription", audit)),
		BindRequest[models.Prescription, PrescriptionRequest]).Register(api, guard)

	env := &recordEnv{testEnv: &testEnv{router: r, audit: audit}, db: db}
	require.NoError(t, db.Order("name").Find(&env.hospitals).Error)
	require.NoError(t, db.Order("hospital_id, type").Find(&env.wards).Error)
	return env
}

func (env *recordEnv) wardOf(t *testing.T, hospitalID uuid.UUID) models.Ward {
	t.Helper()
	for _, w := range env.wards {
		if w.HospitalID == hospitalID {
			return w
		}
	}
	t.Fatalf("no ward for hospital %s", hospitalID)
	return models.Ward{}
}

func TestRecordHandler_DoctorTakesHospitalFromWard(t *testing.T) {
	env := newRecordEnv(t)
	admin := token(t, models.RoleAdmin)
	wardA := env.wardOf(t, env.hospitals[0].ID)
	wardB := env.wardOf(t, env.hospitals[1].ID)

	w := env.do(t, http.MethodPost, "/api/doctors", admin, DoctorRequest{
		Name: "Dr. Mikkel Storm", Speciality: models.DoctorRadiology, WardID: wardA.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created models.Doctor
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &created))
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, env.hospitals[0].ID, created.HospitalID)

	w = env.do(t, http.MethodPut, "/api/doctors/"+created.ID.String(), admin, DoctorRequest{
		Name: "Dr. Mikkel Storm", Speciality: models.DoctorSurgery, WardID: wardB.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.Doctor
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, wardB.ID, updated.WardID)
	assert.Equal(t, env.hospitals[1].ID, updated.HospitalID)
	assert.Equal(t, models.DoctorSurgery, updated.Speciality)

	w = env.do(t, http.MethodPost, "/api/doctors", admin, DoctorRequest{
		Name: "Dr. Nobody", Speciality: models.DoctorRadiology, WardID: uuid.New(),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/doctors", admin, DoctorRequest{
		Name: "Dr. Odd", Speciality: "ASTROLOGY", WardID: wardA.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPut, "/api/doctors/"+uuid.NewString(), admin, DoctorRequest{
		Name: "Dr. Ghost", Speciality: models.DoctorRadiology, WardID: wardA.ID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Equal(t, []string{"doctor_create", "doctor_update"}, env.audit.actions)
}

func TestRecordHandler_PatientWardMustMatchHospital(t *testing.T) {
	env := newRecordEnv(t)
	admin := token(t, models.RoleAdmin)
	wardB := env.wardOf(t, env.hospitals[1].ID)

	w := env.do(t, http.MethodPost, "/api/patients", admin, PatientRequest{
		Name: "Sofie Dahl", DateOfBirth: "1990-05-17", Gender: "Female",
		HospitalID: env.hospitals[0].ID, WardID: &wardB.ID,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w).Error, "does not belong")

	var diagnosis models.Diagnosis
	require.NoError(t, env.db.First(&diagnosis).Error)

	w = env.do(t, http.MethodPost, "/api/patients", admin, PatientRequest{
		Name: "Sofie Dahl", DateOfBirth: "1990-05-17", Gender: "Female",
		HospitalID: env.hospitals[1].ID, WardID: &wardB.ID, DiagnosisIDs: []uuid.UUID{diagnosis.ID},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created models.Patient
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &created))

	w = env.do(t, http.MethodGet, "/api/patients/"+created.ID.String(), token(t, models.RoleUser), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Patient
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &got))
	assert.Equal(t, "1990-05-17", got.DateOfBirth.Format("2006-01-02"))
	require.Len(t, got.Diagnoses, 1)
	assert.Equal(t, diagnosis.ID, got.Diagnoses[0].ID)

	w = env.do(t, http.MethodPost, "/api/patients", admin, map[string]string{
		"name": "Sofie Dahl", "date_of_birth": "17/05/1990", "gender": "Female",
		"hospital_id": env.hospitals[1].ID.String(),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/patients", admin, map[string]string{
		"name": "Sofie Dahl", "date_of_birth": "1990-05-17", "gender": "Unknown",
		"hospital_id": env.hospitals[1].ID.String(),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodDelete, "/api/patients/"+created.ID.String(), admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var links int64
	require.NoError(t, env.db.Model(&models.PatientDiagnosis{}).Where("patient_id = ?", created.ID).Count(&links).Error)
	assert.Zero(t, links)
}

func TestRecordHandler_MedicationLifecycle(t *testing.T) {
	env := newRecordEnv(t)
	admin := token(t, models.RoleAdmin)

	w := env.do(t, http.MethodPost, "/api/medications", token(t, models.RoleUser), MedicationRequest{Name: "Codeine"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodPost, "/api/medications", admin, MedicationRequest{Dosage: "30mg"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/medications", admin, MedicationRequest{Name: "Codeine", Dosage: "30mg"})
	require.Equal(t, http.StatusCreated, w.Code)
	var med models.Medication
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &med))

	w = env.do(t, http.MethodPut, "/api/medications/"+med.ID.String(), admin, MedicationRequest{Name: "Codeine", Dosage: "60mg"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &med))
	assert.Equal(t, "60mg", med.Dosage)

	w = env.do(t, http.MethodDelete, "/api/medications/"+med.ID.String(), admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/api/medications/"+med.ID.String(), admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, "/api/medications/not-a-uuid", admin, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, []string{"medication_create", "medication_update", "medication_delete"}, env.audit.actions)
}

func TestRecordHandler_PrescriptionDates(t *testing.T) {
	env := newRecordEnv(t)
	admin := token(t, models.RoleAdmin)

	var patient models.Patient
	var doctor models.Doctor
	var med models.Medication
	require.NoError(t, env.db.First(&patient).Error)
	require.NoError(t, env.db.First(&doctor).Error)
	require.NoError(t, env.db.First(&med).Error)

	req := PrescriptionRequest{
		StartDate: "2026-10-16", EndDate: "2026-10-10",
		PatientID: patient.ID, DoctorID: doctor.ID, MedicationID: med.ID,
	}
	w := env.do(t, http.MethodPost, "/api/prescriptions", admin, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w).Error, "end date")

	req.EndDate = "2026-10-30"
	w = env.do(t, http.MethodPost, "/api/prescriptions", admin, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	req.MedicationID = uuid.New()
	w = env.do(t, http.MethodPost, "/api/prescriptions", admin, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
