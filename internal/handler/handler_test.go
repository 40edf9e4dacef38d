package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-records/internal/middleware"
	"hospital-records/internal/models"
	"hospital-records/internal/repository"
	"hospital-records/internal/seeder"
	"hospital-records/internal/service"
	"hospital-records/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.InitJWT("handler-test-secret", time.Minute, time.Hour)
}

type fakeAudit struct{ actions []string }

func (f *fakeAudit) CreateAuditLog(_ context.Context, _ *uuid.UUID, action string, _ string) error {
	f.actions = append(f.actions, action)
	return nil
}

type fakeSeeder struct {
	last    seeder.Counts
	results map[string]int
	err     error
}

func (f *fakeSeeder) Seed(_ context.Context, counts seeder.Counts) (map[string]int, error) {
	f.last = counts
	return f.results, f.err
}

type fakeHospitals struct {
	hospitals map[uuid.UUID]models.Hospital
	deleteErr error
}

func (f *fakeHospitals) GetHospitalByID(_ context.Context, id uuid.UUID) (*models.Hospital, error) {
	h, ok := f.hospitals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &h, nil
}

func (f *fakeHospitals) CreateHospital(_ context.Context, h *models.Hospital) error {
	f.hospitals[h.ID] = *h
	return nil
}

func (f *fakeHospitals) UpdateHospital(_ context.Context, h *models.Hospital) error {
	f.hospitals[h.ID] = *h
	return nil
}

func (f *fakeHospitals) DeleteHospital(_ context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.hospitals[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.hospitals, id)
	return nil
}

type fakeWards struct{ wards []models.Ward }

func (f *fakeWards) GetWardsByHospitalID(_ context.Context, hospitalID uuid.UUID) ([]models.Ward, error) {
	var out []models.Ward
	for _, w := range f.wards {
		if w.HospitalID == hospitalID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWards) CreateWard(_ context.Context, w *models.Ward) error {
	f.wards = append(f.wards, *w)
	return nil
}

type fakePatients struct{ patients []models.Patient }

func (f *fakePatients) FindAll(_ context.Context, limit, offset int) ([]models.Patient, error) {
	if offset >= len(f.patients) {
		return nil, nil
	}
	end := len(f.patients)
	if offset+limit < end {
		end = offset + limit
	}
	return f.patients[offset:end], nil
}

func (f *fakePatients) FindByID(_ context.Context, id uuid.UUID) (*models.Patient, error) {
	for i := range f.patients {
		if f.patients[i].ID == id {
			return &f.patients[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePatients) Create(_ context.Context, p *models.Patient) error {
	f.patients = append(f.patients, *p)
	return nil
}

func (f *fakePatients) Update(context.Context, uuid.UUID, *models.Patient) error {
	return nil
}

func (f *fakePatients) Delete(context.Context, uuid.UUID) error {
	return nil
}

type testEnv struct {
	router    *gin.Engine
	seeder    *fakeSeeder
	audit     *fakeAudit
	hospitals *fakeHospitals
	patients  *fakePatients
}

func newTestEnv() *testEnv {
	env := &testEnv{
		seeder:    &fakeSeeder{results: map[string]int{seeder.KindHospitals: 100}},
		audit:     &fakeAudit{},
		hospitals: &fakeHospitals{hospitals: map[uuid.UUID]models.Hospital{}},
		patients: &fakePatients{patients: []models.Patient{
			{ID: uuid.New(), Name: "Anna Hansen"},
			{ID: uuid.New(), Name: "Lars Jensen"},
			{ID: uuid.New(), Name: "Mette Nielsen"},
		}},
	}

	seedHandler := NewSeedHandler(service.NewSeedService(env.seeder, env.audit))
	hospitalHandler := NewHospitalHandler(service.NewHospitalService(env.hospitals, &fakeWards{}, env.audit))
	patientHandler := NewRecordHandler("patients", "Patient", service.NewRecordService[models.Patient](env.patients), nil)

	r := gin.New()
	api := r.Group("/api", middleware.AuthMiddleware())
	patientHandler.Register(api)
	api.POST("/hospitals", middleware.RequireAdmin(), hospitalHandler.CreateHospital)
	api.PUT("/hospitals/:id", middleware.RequireAdmin(), hospitalHandler.UpdateHospital)
	api.DELETE("/hospitals/:id", middleware.RequireAdmin(), hospitalHandler.DeleteHospital)
	api.GET("/hospitals/:id/wards", hospitalHandler.GetHospitalWards)
	api.POST("/hospitals/:id/wards", middleware.RequireAdmin(), hospitalHandler.CreateHospitalWard)

	admin := r.Group("/admin", middleware.AuthMiddleware(), middleware.RequireAdmin())
	admin.POST("/seed/quick", seedHandler.SeedQuick)
	admin.POST("/seed/large", seedHandler.SeedLarge)
	admin.POST("/seed/custom", seedHandler.SeedCustom)

	env.router = r
	return env
}

func token(t *testing.T, role string) string {
	t.Helper()
	tok, err := utils.GenerateAccessToken(uuid.New(), role)
	require.NoError(t, err)
	return tok
}

func (env *testEnv) do(t *testing.T, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func TestSeedEndpoints_RequireAdmin(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/admin/seed/quick", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/admin/seed/quick", token(t, models.RoleUser), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSeedEndpoints_Presets(t *testing.T) {
	env := newTestEnv()
	admin := token(t, models.RoleAdmin)

	w := env.do(t, http.MethodPost, "/admin/seed/quick", admin, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	e := decode(t, w)
	assert.True(t, e.Success)
	assert.JSONEq(t, `{"hospitals":100}`, string(e.Data))
	assert.Equal(t, service.QuickCounts, env.seeder.last)

	w = env.do(t, http.MethodPost, "/admin/seed/large", admin, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, service.LargeCounts, env.seeder.last)

	custom := SeedCountsRequest{Hospitals: 1, Patients: 10, Doctors: 1, Nurses: 1, Appointments: 5}
	w = env.do(t, http.MethodPost, "/admin/seed/custom", admin, custom)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, seeder.Counts{Hospitals: 1, Patients: 10, Doctors: 1, Nurses: 1, Appointments: 5}, env.seeder.last)

	assert.Equal(t, []string{"bulk_seed", "bulk_seed", "bulk_seed"}, env.audit.actions)
}

func TestSeedEndpoints_Failure(t *testing.T) {
	env := newTestEnv()
	admin := token(t, models.RoleAdmin)

	env.seeder.err = errors.New("database unavailable")
	w := env.do(t, http.MethodPost, "/admin/seed/quick", admin, nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	e := decode(t, w)
	assert.False(t, e.Success)
	assert.Equal(t, "database unavailable", e.Error)

	env.seeder.err = errors.New("")
	w = env.do(t, http.MethodPost, "/admin/seed/large", admin, nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Unknown error", decode(t, w).Error)
}

func TestSeedCustom_RejectsInvalidCounts(t *testing.T) {
	env := newTestEnv()
	admin := token(t, models.RoleAdmin)

	w := env.do(t, http.MethodPost, "/admin/seed/custom", admin, map[string]int{"hospitals": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/admin/seed/custom", admin, map[string]int{"patients": 10001})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordHandler_ListAndGet(t *testing.T) {
	env := newTestEnv()
	user := token(t, models.RoleUser)

	w := env.do(t, http.MethodGet, "/api/patients?limit=2&offset=1", user, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Patients []models.Patient `json:"patients"`
		Count    int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &page))
	assert.Equal(t, 2, page.Count)
	assert.Equal(t, "Lars Jensen", page.Patients[0].Name)

	id := env.patients.patients[2].ID
	w = env.do(t, http.MethodGet, "/api/patients/"+id.String(), user, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var p models.Patient
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &p))
	assert.Equal(t, "Mette Nielsen", p.Name)

	w = env.do(t, http.MethodGet, "/api/patients/"+uuid.NewString(), user, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, "/api/patients/not-a-uuid", user, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/api/patients", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// registered without a binder, so no write routes exist
	w = env.do(t, http.MethodPost, "/api/patients", token(t, models.RoleAdmin), map[string]string{"name": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHospitalHandler_CreateUpdateAndWards(t *testing.T) {
	env := newTestEnv()
	admin := token(t, models.RoleAdmin)

	w := env.do(t, http.MethodPost, "/api/hospitals", admin, HospitalRequest{Name: "Esbjerg Community Hospital", City: "Esbjerg"})
	require.Equal(t, http.StatusCreated, w.Code)
	var h models.Hospital
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &h))
	assert.NotEqual(t, uuid.Nil, h.ID)

	w = env.do(t, http.MethodPost, "/api/hospitals", admin, map[string]string{"city": "Esbjerg"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/hospitals", token(t, models.RoleUser), HospitalRequest{Name: "x"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodPut, "/api/hospitals/"+h.ID.String(), admin, HospitalRequest{Name: "Esbjerg Hospital"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPut, "/api/hospitals/"+uuid.NewString(), admin, HospitalRequest{Name: "Nowhere"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	wardPath := "/api/hospitals/" + h.ID.String() + "/wards"
	w = env.do(t, http.MethodPost, wardPath, admin, WardRequest{Type: models.WardTypes[0], MaxCapacity: 25})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPost, wardPath, admin, WardRequest{Type: "BOGUS", MaxCapacity: 25})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, wardPath, token(t, models.RoleUser), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var wards struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &wards))
	assert.Equal(t, 1, wards.Count)
}

func TestHospitalHandler_DeleteErrors(t *testing.T) {
	env := newTestEnv()
	admin := token(t, models.RoleAdmin)
	id := uuid.New()
	env.hospitals.hospitals[id] = models.Hospital{ID: id, Name: "Vejle General Hospital"}

	w := env.do(t, http.MethodDelete, "/api/hospitals/"+uuid.NewString(), admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	env.hospitals.deleteErr = repository.ErrInUse
	w = env.do(t, http.MethodDelete, "/api/hospitals/"+id.String(), admin, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, decode(t, w).Error, "dependent records")

	env.hospitals.deleteErr = errors.New("dial tcp 10.0.0.5:3306: connection refused")
	w = env.do(t, http.MethodDelete, "/api/hospitals/"+id.String(), admin, nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to delete hospital", decode(t, w).Error)

	env.hospitals.deleteErr = nil
	w = env.do(t, http.MethodDelete, "/api/hospitals/"+id.String(), admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, env.audit.actions, "hospital_delete")
}
