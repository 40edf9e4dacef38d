package models

import (
	"time"

	"github.com/google/uuid"
)

type Medication struct {
	ID     uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Name   string    `gorm:"size:255;not null" json:"name"`
	Dosage string    `gorm:"size:32" json:"dosage"`
}

func (Medication) TableName() string {
	return "medications"
}

type Diagnosis struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Date        time.Time `gorm:"column:diagnosis_date;type:date" json:"date"`
	Description string    `gorm:"size:255" json:"description"`
	DoctorID    uuid.UUID `gorm:"type:char(36);not null;index" json:"doctor_id"`

	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Diagnosis) TableName() string {
	return "diagnoses"
}

type Appointment struct {
	ID        uuid.UUID         `gorm:"type:char(36);primaryKey" json:"id"`
	Date      time.Time         `gorm:"column:appointment_date;type:date;index" json:"date"`
	Reason    string            `gorm:"size:255" json:"reason"`
	Status    AppointmentStatus `gorm:"size:32;not null" json:"status"`
	PatientID uuid.UUID         `gorm:"type:char(36);not null;index" json:"patient_id"`
	DoctorID  uuid.UUID         `gorm:"type:char(36);not null;index" json:"doctor_id"`
	NurseID   uuid.UUID         `gorm:"type:char(36);not null;index" json:"nurse_id"`

	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Nurse   *Nurse   `gorm:"foreignKey:NurseID" json:"nurse,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

type Prescription struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	StartDate    time.Time `gorm:"type:date" json:"start_date"`
	EndDate      time.Time `gorm:"type:date" json:"end_date"`
	PatientID    uuid.UUID `gorm:"type:char(36);not null;index" json:"patient_id"`
	DoctorID     uuid.UUID `gorm:"type:char(36);not null;index" json:"doctor_id"`
	MedicationID uuid.UUID `gorm:"type:char(36);not null;index" json:"medication_id"`

	Patient    *Patient    `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor     *Doctor     `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Medication *Medication `gorm:"foreignKey:MedicationID" json:"medication,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

type Surgery struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Date        time.Time `gorm:"column:surgery_date;type:date;index" json:"date"`
	Description string    `gorm:"size:255" json:"description"`
	PatientID   uuid.UUID `gorm:"type:char(36);not null;index" json:"patient_id"`
	DoctorID    uuid.UUID `gorm:"type:char(36);not null;index" json:"doctor_id"`

	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Surgery) TableName() string {
	return "surgeries"
}
