package create_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecindad/VCN-ReservationService/internal/api/middleware"
	createReservation "github.com/vecindad/VCN-ReservationService/internal/usecase/create_reservation"
)

type fakeUseCase struct {
	gotReq *createReservation.Request
	resp   *createReservation.Response
	err    error
}

func (u *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
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

// serve прогоняет запрос через Auth middleware, как в боевом роутере
func serve(uc CreateReservationUseCase, body string, headers map[string]string) *httptest.ResponseRecorder {
	handler := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

func authHeaders() map[string]string {
	return map[string]string{middleware.HeaderUserID: "42"}
}

func TestHandle_Created(t *testing.T) {
	start := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createReservation.Response{
		ID:           7,
		UserID:       42,
		FacilityName: "Sauna",
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		Price:        10.00,
		Status:       "confirmed",
		CreatedAt:    start.Add(-time.Hour),
	}}

	rec := serve(uc, `{"facility":"Sauna","startTime":"2026-01-20T10:00:00Z","endTime":"2026-01-20T11:00:00Z"}`,
		authHeaders())

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
	assert.Contains(t, rec.Body.String(), `"facility":"Sauna"`)

	// Идентификатор пользователя берётся из заголовка, не из тела
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(42), uc.gotReq.UserID)
}

func TestHandle_MissingUserHeader(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(uc, `{"facility":"Sauna","startTime":"2026-01-20T10:00:00Z","endTime":"2026-01-20T11:00:00Z"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_BadTimeFormat(t *testing.T) {
	rec := serve(&fakeUseCase{}, `{"facility":"Sauna","startTime":"20-01-2026","endTime":"2026-01-20T11:00:00Z"}`,
		authHeaders())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnknownField(t *testing.T) {
	rec := serve(&fakeUseCase{}, `{"facility":"Sauna","startTime":"2026-01-20T10:00:00Z","endTime":"2026-01-20T11:00:00Z","price":0.01}`,
		authHeaders())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	body := `{"facility":"Sauna","startTime":"2026-01-20T10:00:00Z","endTime":"2026-01-20T11:00:00Z"}`

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"некорректный интервал", createReservation.ErrInvalidRange, http.StatusBadRequest},
		{"объект не найден", createReservation.ErrFacilityNotFound, http.StatusNotFound},
		{"дубликат", createReservation.ErrDuplicateReservation, http.StatusConflict},
		{"вместимость исчерпана", &createReservation.CapacityError{Occupied: 10, Capacity: 10}, http.StatusConflict},
		{"внутренняя ошибка", createReservation.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, body, authHeaders())
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_CapacityMessageCarriesCounts(t *testing.T) {
	rec := serve(&fakeUseCase{err: &createReservation.CapacityError{Occupied: 10, Capacity: 10}},
		`{"facility":"Sauna","startTime":"2026-01-20T10:00:00Z","endTime":"2026-01-20T11:00:00Z"}`,
		authHeaders())

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "10/10")
}
