package service

import (
	"context"
	"errors"
	"sync"

	"hospital-records/internal/models"
	"hospital-records/internal/repository"
	"hospital-records/internal/seeder"

	"github.com/google/uuid"
)

type auditEntry struct {
	userID  *uuid.UUID
	action  string
	details string
}

type mockAuditRepo struct {
	mu      sync.Mutex
	entries []auditEntry
}

func (m *mockAuditRepo) CreateAuditLog(_ context.Context, userID *uuid.UUID, action string, details string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, auditEntry{userID: userID, action: action, details: details})
	return nil
}

func (m *mockAuditRepo) actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.action)
	}
	return out
}

type mockUserRepo struct {
	users  map[string]*models.User
	tokens map[string]*models.RefreshToken
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:  make(map[string]*models.User),
		tokens: make(map[string]*models.RefreshToken),
	}
}

func (m *mockUserRepo) FindUserByUsername(_ context.Context, username string) (*models.User, error) {
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) CreateUser(_ context.Context, user *models.User) error {
	m.users[user.Username] = user
	return nil
}

func (m *mockUserRepo) CreateRefreshToken(_ context.Context, token *models.RefreshToken) error {
	for _, u := range m.users {
		if u.ID == token.UserID {
			token.User = *u
		}
	}
	m.tokens[token.TokenHash] = token
	return nil
}

func (m *mockUserRepo) FindRefreshTokenByHash(_ context.Context, hash string) (*models.RefreshToken, error) {
	if t, ok := m.tokens[hash]; ok && !t.Revoked {
		return t, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) RevokeRefreshTokenByHash(_ context.Context, hash string) error {
	if t, ok := m.tokens[hash]; ok {
		t.Revoked = true
	}
	return nil
}

type mockHospitalRepo struct {
	hospitals map[uuid.UUID]*models.Hospital
	updated   *models.Hospital
	deleted   []uuid.UUID
}

func newMockHospitalRepo(hospitals ...models.Hospital) *mockHospitalRepo {
	m := &mockHospitalRepo{hospitals: make(map[uuid.UUID]*models.Hospital)}
	for i := range hospitals {
		m.hospitals[hospitals[i].ID] = &hospitals[i]
	}
	return m
}

func (m *mockHospitalRepo) GetHospitalByID(_ context.Context, id uuid.UUID) (*models.Hospital, error) {
	h, ok := m.hospitals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *h
	return &copied, nil
}

func (m *mockHospitalRepo) CreateHospital(_ context.Context, hospital *models.Hospital) error {
	m.hospitals[hospital.ID] = hospital
	return nil
}

func (m *mockHospitalRepo) UpdateHospital(_ context.Context, hospital *models.Hospital) error {
	m.updated = hospital
	return nil
}

func (m *mockHospitalRepo) DeleteHospital(_ context.Context, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	delete(m.hospitals, id)
	return nil
}

type mockWardRepo struct {
	wards []models.Ward
}

func (m *mockWardRepo) GetWardsByHospitalID(_ context.Context, hospitalID uuid.UUID) ([]models.Ward, error) {
	var out []models.Ward
	for _, w := range m.wards {
		if w.HospitalID == hospitalID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *mockWardRepo) CreateWard(_ context.Context, ward *models.Ward) error {
	m.wards = append(m.wards, *ward)
	return nil
}

type mockSeeder struct {
	calls   []seeder.Counts
	results map[string]int
	err     error
}

func (m *mockSeeder) Seed(_ context.Context, counts seeder.Counts) (map[string]int, error) {
	m.calls = append(m.calls, counts)
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

type mockRecordRepo struct {
	records []models.Medication
	err     error
}

func (m *mockRecordRepo) FindAll(_ context.Context, limit, offset int) ([]models.Medication, error) {
	if m.err != nil {
		return nil, m.err
	}
	if offset >= len(m.records) {
		return nil, nil
	}
	end := len(m.records)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return m.records[offset:end], nil
}

func (m *mockRecordRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Medication, error) {
	for i := range m.records {
		if m.records[i].ID == id {
			return &m.records[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockRecordRepo) Create(_ context.Context, record *models.Medication) error {
	if m.err != nil {
		return m.err
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	m.records = append(m.records, *record)
	return nil
}

func (m *mockRecordRepo) Update(_ context.Context, id uuid.UUID, record *models.Medication) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.records {
		if m.records[i].ID == id {
			m.records[i] = *record
			m.records[i].ID = id
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockRecordRepo) Delete(_ context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.records {
		if m.records[i].ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// mockFinder resolves records by id for RecordRules
type mockFinder[T any] map[uuid.UUID]*T

func (m mockFinder[T]) FindByID(_ context.Context, id uuid.UUID) (*T, error) {
	if r, ok := m[id]; ok {
		return r, nil
	}
	return nil, repository.ErrNotFound
}

type mockCounter struct {
	n   int64
	err error
}

func (m mockCounter) Count(context.Context) (int64, error) {
	return m.n, m.err
}

var errBoom = errors.New("boom")
