package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BeforeCreate hooks generate a UUID for records created without one.
// Seeded records already carry their id and keep it.

func newIDIfMissing(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (h *Hospital) BeforeCreate(tx *gorm.DB) error {
	newIDIfMissing(&h.ID)
	return nil
}

func (w *Ward) BeforeCreate(tx *gorm.DB) error {
	newIDIfMissing(&w.ID)
	return nil
}

func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	newIDIfMissing(&d.ID)
	return nil
}

func (n *Nurse) BeforeCreate(tx *gorm.DB) error {
	newIDIfMissing(&n.ID)
	return nil
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	newIDIfMissing(&p.ID)
	return nil
}

func (m *Medication) BeforeCreate(tx *gorm.DB) error {
	newIDIfMissing(&m.ID)
	return nil
}

func (d *Diagnosis) BeforeCreate(tx *gorm.DB) error {
	newIDIfMissing(&d.ID)
	return nil
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	newIDIfMissing(&a.ID)
	return nil
}

func (p *Prescription) BeforeCreate(tx *gorm.DB) error {
	newIDIfMissing(&p.ID)
	return nil
}

func (s *Surgery) BeforeCreate(tx *gorm.DB) error {
	newIDIfMissing(&s.ID)
	return nil
}
