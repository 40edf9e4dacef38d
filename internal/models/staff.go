package models

import (
	"time"

	"github.com/google/uuid"
)

// Doctor works in one ward; HospitalID always mirrors the ward's hospital
type Doctor struct {
	ID         uuid.UUID        `gorm:"type:char(36);primaryKey" json:"id"`
	Name       string           `gorm:"size:255;not null" json:"name"`
	Speciality DoctorSpeciality `gorm:"size:32;not null" json:"speciality"`
	WardID     uuid.UUID        `gorm:"type:char(36);not null;index" json:"ward_id"`
	HospitalID uuid.UUID        `gorm:"type:char(36);not null;index" json:"hospital_id"`
	CreatedAt  time.Time        `json:"created_at"`

	Ward     *Ward     `gorm:"foreignKey:WardID" json:"ward,omitempty"`
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// Nurse follows the same ward/hospital rule as Doctor
type Nurse struct {
	ID         uuid.UUID       `gorm:"type:char(36);primaryKey" json:"id"`
	Name       string          `gorm:"size:255;not null" json:"name"`
	Speciality NurseSpeciality `gorm:"size:32;not null" json:"speciality"`
	WardID     uuid.UUID       `gorm:"type:char(36);not null;index" json:"ward_id"`
	HospitalID uuid.UUID       `gorm:"type:char(36);not null;index" json:"hospital_id"`
	CreatedAt  time.Time       `json:"created_at"`

	Ward     *Ward     `gorm:"foreignKey:WardID" json:"ward,omitempty"`
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (Nurse) TableName() string {
	return "nurses"
}
