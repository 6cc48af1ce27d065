package cancel_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/vecindad/VCN-ReservationService/internal/api/middleware"
	"github.com/vecindad/VCN-ReservationService/internal/domain"
	"github.com/vecindad/VCN-ReservationService/internal/service/reservations"
)

type fakeService struct {
	gotID        int64
	gotRequester int64
	gotRole      domain.Role
	err          error
}

func (s *fakeService) Cancel(_ context.Context, id int64, requesterID int64, role domain.Role) error {
	s.gotID = id
	s.gotRequester = requesterID
	s.gotRole = role
	return s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc ReservationService, path string, headers map[string]string) *httptest.ResponseRecorder {
	handler := NewHandler(svc, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/reservations/{reservationId}", handler.Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Cancelled(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "/api/v1/reservations/7", map[string]string{
		middleware.HeaderUserID:   "42",
		middleware.HeaderUserRole: "admin",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.gotID)
	assert.Equal(t, int64(42), svc.gotRequester)
	assert.Equal(t, domain.RoleAdmin, svc.gotRole)
}

func TestHandle_RoleDefaultsToResident(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "/api/v1/reservations/7", map[string]string{
		middleware.HeaderUserID: "42",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.RoleResident, svc.gotRole)
}

func TestHandle_InvalidID(t *testing.T) {
	rec := serve(&fakeService{}, "/api/v1/reservations/abc", map[string]string{
		middleware.HeaderUserID: "42",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"не найдено", reservations.ErrReservationNotFound, http.StatusNotFound},
		{"чужое бронирование", reservations.ErrAccessDenied, http.StatusForbidden},
		{"уже отменено", reservations.ErrAlreadyCancelled, http.StatusConflict},
		{"внутренняя ошибка", reservations.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, "/api/v1/reservations/7", map[string]string{
				middleware.HeaderUserID: "42",
			})
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
