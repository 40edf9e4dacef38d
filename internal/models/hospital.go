package models

import (
	"time"

	"github.com/google/uuid"
)

// Hospital represents a hospital/medical facility in the system
type Hospital struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;index" json:"name"`
	Address   string    `gorm:"size:255" json:"address,omitempty"`
	City      string    `gorm:"size:100;index" json:"city,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Wards []Ward `gorm:"foreignKey:HospitalID" json:"wards,omitempty"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}

// Ward is a hospital sub-unit. Every ward is owned by exactly one hospital.
type Ward struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	HospitalID  uuid.UUID `gorm:"type:char(36);not null;index" json:"hospital_id"`
	Type        WardType  `gorm:"size:32;not null" json:"type"`
	MaxCapacity int       `gorm:"not null" json:"max_capacity"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

// TableName specifies the table name for Ward model
func (Ward) TableName() string {
	return "wards"
}
