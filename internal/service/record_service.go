package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidRecord is returned when a record breaks a reference or value rule
var ErrInvalidRecord = errors.New("invalid record")

type recordStore[T any] interface {
	FindAll(ctx context.Context, limit, offset int) ([]T, error)
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, record *T) error
	Update(ctx context.Context, id uuid.UUID, record *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecordService exposes list, lookup and admin write operations of one record kind
type RecordService[T any] struct {
	repo      recordStore[T]
	kind      string
	prepare   func(ctx context.Context, record *T) error
	auditRepo auditRecorder
}

type RecordOption[T any] func(*RecordService[T])

// WithRules runs prepare on every record before it is created or updated.
// prepare may fill derived fields; an error aborts the write.
func WithRules[T any](prepare func(ctx context.Context, record *T) error) RecordOption[T] {
	return func(s *RecordService[T]) {
		s.prepare = prepare
	}
}

// WithAudit records every write as "<kind>_create", "<kind>_update" or "<kind>_delete"
func WithAudit[T any](kind string, auditRepo auditRecorder) RecordOption[T] {
	return func(s *RecordService[T]) {
		s.kind = kind
		s.auditRepo = auditRepo
	}
}

func NewRecordService[T any](repo recordStore[T], opts ...RecordOption[T]) *RecordService[T] {
	s := &RecordService[T]{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns one page of records
func (s *RecordService[T]) List(ctx context.Context, limit, offset int) ([]T, error) {
	records, err := s.repo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Get returns a single record; repository.ErrNotFound when missing
func (s *RecordService[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates and inserts a new record (admin only)
func (s *RecordService[T]) Create(ctx context.Context, record *T, userID *uuid.UUID) error {
	if s.prepare != nil {
		if err := s.prepare(ctx, record); err != nil {
			return err
		}
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.kind, err)
	}

	s.audit(ctx, userID, "create", fmt.Sprintf("Created %s", s.kind))
	return nil
}

// Update replaces an existing record and returns it as stored (admin only)
func (s *RecordService[T]) Update(ctx context.Context, id uuid.UUID, record *T, userID *uuid.UUID) (*T, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if s.prepare != nil {
		if err := s.prepare(ctx, record); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Update(ctx, id, record); err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", s.kind, err)
	}

	s.audit(ctx, userID, "update", fmt.Sprintf("Updated %s: %s", s.kind, id))
	return s.repo.FindByID(ctx, id)
}

// Delete removes a record (admin only)
func (s *RecordService[T]) Delete(ctx context.Context, id uuid.UUID, userID *uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.kind, err)
	}

	s.audit(ctx, userID, "delete", fmt.Sprintf("Deleted %s: %s", s.kind, id))
	return nil
}

func (s *RecordService[T]) audit(ctx context.Context, userID *uuid.UUID, op, details string) {
	if s.auditRepo == nil {
		return
	}
	_ = s.auditRepo.CreateAuditLog(ctx, userID, s.kind+"_"+op, details)
}
