package handler

import (
	"fmt"
	"time"

	"hospital-records/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// RecordRequest is a request body that maps onto a record of type T
type RecordRequest[T any] interface {
	ToModel() (T, error)
}

// BindRequest decodes the JSON body into R, validates its binding tags and
// converts it to a record.
func BindRequest[T any, R RecordRequest[T]](c *gin.Context) (*T, error) {
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	record, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a date in YYYY-MM-DD form", field)
	}
	return t, nil
}

type WardRecordRequest struct {
	HospitalID  uuid.UUID       `json:"hospital_id" binding:"required"`
	Type        models.WardType `json:"type" binding:"required"`
	MaxCapacity int             `json:"max_capacity" binding:"required,min=1"`
}

func (r WardRecordRequest) ToModel() (models.Ward, error) {
	return models.Ward{HospitalID: r.HospitalID, Type: r.Type, MaxCapacity: r.MaxCapacity}, nil
}

type DoctorRequest struct {
	Name       string                  `json:"name" binding:"required,max=255"`
	Speciality models.DoctorSpeciality `json:"speciality" binding:"required"`
	WardID     uuid.UUID               `json:"ward_id" binding:"required"`
}

func (r DoctorRequest) ToModel() (models.Doctor, error) {
	return models.Doctor{Name: r.Name, Speciality: r.Speciality, WardID: r.WardID}, nil
}

type NurseRequest struct {
	Name       string                 `json:"name" binding:"required,max=255"`
	Speciality models.NurseSpeciality `json:"speciality" binding:"required"`
	WardID     uuid.UUID              `json:"ward_id" binding:"required"`
}

func (r NurseRequest) ToModel() (models.Nurse, error) {
	return models.Nurse{Name: r.Name, Speciality: r.Speciality, WardID: r.WardID}, nil
}

type PatientRequest struct {
	Name         string      `json:"name" binding:"required,max=255"`
	DateOfBirth  string      `json:"date_of_birth" binding:"required,datetime=2006-01-02"`
	Gender       string      `json:"gender" binding:"required,oneof=Male Female Other"`
	HospitalID   uuid.UUID   `json:"hospital_id" binding:"required"`
	WardID       *uuid.UUID  `json:"ward_id"`
	DiagnosisIDs []uuid.UUID `json:"diagnosis_ids"`
}

func (r PatientRequest) ToModel() (models.Patient, error) {
	dob, err := parseDate("date_of_birth", r.DateOfBirth)
	if err != nil {
		return models.Patient{}, err
	}
	p := models.Patient{
		Name:        r.Name,
		DateOfBirth: dob,
		Gender:      r.Gender,
		HospitalID:  r.HospitalID,
		WardID:      r.WardID,
	}
	for _, id := range r.DiagnosisIDs {
		p.Diagnoses = append(p.Diagnoses, models.Diagnosis{ID: id})
	}
	return p, nil
}

type MedicationRequest struct {
	Name   string `json:"name" binding:"required,max=255"`
	Dosage string `json:"dosage" binding:"max=32"`
}

func (r MedicationRequest) ToModel() (models.Medication, error) {
	return models.Medication{Name: r.Name, Dosage: r.Dosage}, nil
}

type DiagnosisRequest struct {
	Date        string    `json:"date" binding:"required,datetime=2006-01-02"`
	Description string    `json:"description" binding:"required,max=255"`
	DoctorID    uuid.UUID `json:"doctor_id" binding:"required"`
}

func (r DiagnosisRequest) ToModel() (models.Diagnosis, error) {
	date, err := parseDate("date", r.Date)
	if err != nil {
		return models.Diagnosis{}, err
	}
	return models.Diagnosis{Date: date, Description: r.Description, DoctorID: r.DoctorID}, nil
}

type AppointmentRequest struct {
	Date      string                   `json:"date" binding:"required,datetime=2006-01-02"`
	Reason    string                   `json:"reason" binding:"required,max=255"`
	Status    models.AppointmentStatus `json:"status" binding:"required"`
	PatientID uuid.UUID                `json:"patient_id" binding:"required"`
	DoctorID  uuid.UUID                `json:"doctor_id" binding:"required"`
	NurseID   uuid.UUID                `json:"nurse_id" binding:"required"`
}

func (r AppointmentRequest) ToModel() (models.Appointment, error) {
	date, err := parseDate("date", r.Date)
	if err != nil {
		return models.Appointment{}, err
	}
	return models.Appointment{
		Date:      date,
		Reason:    r.Reason,
		Status:    r.Status,
		PatientID: r.PatientID,
		DoctorID:  r.DoctorID,
		NurseID:   r.NurseID,
	}, nil
}

type PrescriptionRequest struct {
	StartDate    string    `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate      string    `json:"end_date" binding:"required,datetime=2006-01-02"`
	PatientID    uuid.UUID `json:"patient_id" binding:"required"`
	DoctorID     uuid.UUID `json:"doctor_id" binding:"required"`
	MedicationID uuid.UUID `json:"medication_id" binding:"required"`
}

func (r PrescriptionRequest) ToModel() (models.Prescription, error) {
	start, err := parseDate("start_date", r.StartDate)
	if err != nil {
		return models.Prescription{}, err
	}
	end, err := parseDate("end_date", r.EndDate)
	if err != nil {
		return models.Prescription{}, err
	}
	return models.Prescription{
		StartDate:    start,
		EndDate:      end,
		PatientID:    r.PatientID,
		DoctorID:     r.DoctorID,
		MedicationID: r.MedicationID,
	}, nil
}

type SurgeryRequest struct {
	Date        string    `json:"date" binding:"required,datetime=2006-01-02"`
	Description string    `json:"description" binding:"required,max=255"`
	PatientID   uuid.UUID `json:"patient_id" binding:"required"`
	DoctorID    uuid.UUID `json:"doctor_id" binding:"required"`
}

func (r SurgeryRequest) ToModel() (models.Surgery, error) {
	date, err := parseDate("date", r.Date)
	if err != nil {
		return models.Surgery{}, err
	}
	return models.Surgery{Date: date, Description: r.Description, PatientID: r.PatientID, DoctorID: r.DoctorID}, nil
}
