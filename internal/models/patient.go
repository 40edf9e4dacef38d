package models

import (
	"time"

	"github.com/google/uuid"
)

// Patient is admitted to a hospital and, when the hospital has wards, to one of its wards
type Patient struct {
	ID          uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	DateOfBirth time.Time  `gorm:"type:date" json:"date_of_birth"`
	Gender      string     `gorm:"size:16" json:"gender"`
	HospitalID  uuid.UUID  `gorm:"type:char(36);not null;index" json:"hospital_id"`
	WardID      *uuid.UUID `gorm:"type:char(36);index" json:"ward_id"`
	CreatedAt   time.Time  `json:"created_at"`

	Hospital  *Hospital   `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Ward      *Ward       `gorm:"foreignKey:WardID" json:"ward,omitempty"`
	Diagnoses []Diagnosis `gorm:"many2many:patient_diagnoses" json:"diagnoses,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// PatientDiagnosis is a row of the patient_diagnoses join table
type PatientDiagnosis struct {
	PatientID   uuid.UUID `gorm:"type:char(36);primaryKey"`
	DiagnosisID uuid.UUID `gorm:"type:char(36);primaryKey"`
}

func (PatientDiagnosis) TableName() string {
	return "patient_diagnoses"
}
