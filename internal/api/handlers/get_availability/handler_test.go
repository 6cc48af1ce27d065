package get_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailability "github.com/vecindad/VCN-ReservationService/internal/usecase/get_availability"
)

type fakeUseCase struct {
	gotReq *getAvailability.Request
	resp   *getAvailability.Response
	err    error
}

func (u *fakeUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	u.gotReq = req
	if u.err != nil {
		return nil, u.err
	}
	return u.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func emptyDay(loc *time.Location) *getAvailability.Response {
	return &getAvailability.Response{
		FacilityName: "Piscina",
		Date:         time.Date(2026, 1, 20, 0, 0, 0, 0, loc),
		Capacity:     20,
		Slots:        []getAvailability.Slot{},
	}
}

func serve(uc GetAvailabilityUseCase, loc *time.Location, path string) *httptest.ResponseRecorder {
	handler := NewHandler(uc, loc, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/facilities/{name}/availability", handler.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle_ExplicitDate(t *testing.T) {
	uc := &fakeUseCase{resp: emptyDay(time.UTC)}

	rec := serve(uc, time.UTC, "/api/v1/facilities/Piscina/availability?date=2026-01-20")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "Piscina", uc.gotReq.FacilityName)
	assert.Equal(t, "2026-01-20", uc.gotReq.Date.Format("2006-01-02"))
	assert.Contains(t, rec.Body.String(), `"date":"2026-01-20"`)
}

func TestHandle_DefaultDateInBookingTimezone(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	uc := &fakeUseCase{resp: emptyDay(madrid)}

	before := time.Now().In(madrid)
	rec := serve(uc, madrid, "/api/v1/facilities/Piscina/availability")
	after := time.Now().In(madrid)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)

	// "Сегодня" берётся в опорной таймзоне, а не в локальной зоне сервера
	got := uc.gotReq.Date
	assert.Equal(t, madrid.String(), got.Location().String())
	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestHandle_InvalidDate(t *testing.T) {
	rec := serve(&fakeUseCase{}, time.UTC, "/api/v1/facilities/Piscina/availability?date=20-01-2026")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"объект не найден", getAvailability.ErrFacilityNotFound, http.StatusNotFound},
		{"некорректный запрос", getAvailability.ErrInvalidInput, http.StatusBadRequest},
		{"внутренняя ошибка", getAvailability.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, time.UTC, "/api/v1/facilities/Piscina/availability?date=2026-01-20")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
