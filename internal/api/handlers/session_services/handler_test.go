package session_services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	"github.com/avdeez/Shop-SchedulerService/internal/service/sessions/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockService struct {
	setQuantityCalls int
	lastQuantity     int
	getByTokenCalls  int
}

func (m *mockService) AddService(_ context.Context, token string, _ domain.ServiceLine) (*models.SessionResponse, error) {
	return &models.SessionResponse{Token: token}, nil
}

func (m *mockService) RemoveService(_ context.Context, token string, _ int64) (*models.SessionResponse, error) {
	return &models.SessionResponse{Token: token}, nil
}

func (m *mockService) SetQuantity(_ context.Context, token string, _ int64, quantity int) (*models.SessionResponse, error) {
	m.setQuantityCalls++
	m.lastQuantity = quantity
	return &models.SessionResponse{Token: token}, nil
}

func (m *mockService) GetByToken(_ context.Context, token string) (*models.SessionResponse, error) {
	m.getByTokenCalls++
	return &models.SessionResponse{Token: token}, nil
}

func doSetQuantity(t *testing.T, svc *mockService, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(svc, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/sessions/{token}/services/{serviceId}", h.HandleSetQuantity).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/sessions/tok-1/services/7", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleSetQuantity_Valid(t *testing.T) {
	svc := &mockService{}

	rec := doSetQuantity(t, svc, `{"quantity":"3"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.setQuantityCalls)
	assert.Equal(t, 3, svc.lastQuantity)
}

func TestHandleSetQuantity_EmptyInputDoesNotMutate(t *testing.T) {
	svc := &mockService{}

	rec := doSetQuantity(t, svc, `{"quantity":""}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, svc.setQuantityCalls)
	assert.Equal(t, 1, svc.getByTokenCalls)
}

func TestHandleSetQuantity_RejectsGarbage(t *testing.T) {
	cases := []string{`{"quantity":"abc"}`, `{"quantity":"0"}`, `{"quantity":"-2"}`}

	for _, body := range cases {
		svc := &mockService{}

		rec := doSetQuantity(t, svc, body)

		require.Equal(t, http.StatusBadRequest, rec.Code, "body=%s", body)
		assert.Zero(t, svc.setQuantityCalls, "body=%s", body)
	}
}
