package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog represents the audit_logs table
// Admin actions such as bulk seeding and hospital changes are recorded here
type AuditLog struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    *uuid.UUID `gorm:"type:char(36);index" json:"user_id"`
	Action    string     `gorm:"size:100;not null" json:"action"`
	Details   string     `gorm:"type:text" json:"details"`
	CreatedAt time.Time  `json:"created_at"`
	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}

// All lists every model managed by database migrations, parents before children
func All() []interface{} {
	return []interface{}{
		&User{},
		&RefreshToken{},
		&AuditLog{},
		&Hospital{},
		&Ward{},
		&Doctor{},
		&Nurse{},
		&Patient{},
		&Medication{},
		&Diagnosis{},
		&Appointment{},
		&Prescription{},
		&Surgery{},
	}
}
