package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/vecindad/VCN-ReservationService/internal/api/handlers"
	"github.com/vecindad/VCN-ReservationService/internal/domain"
	getAvailability "github.com/vecindad/VCN-ReservationService/internal/usecase/get_availability"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgFacilityNotFound = "объект не найден"
)

type Handler struct {
	useCase  GetAvailabilityUseCase
	location *time.Location
	logger   Logger
}

// NewHandler создает handler занятости. location - таймзона, в которой
// считается "сегодня" при запросе без параметра date
func NewHandler(useCase GetAvailabilityUseCase, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/facilities/{name}/availability?date=YYYY-MM-DD
// Без параметра date возвращается занятость на сегодня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityName := vars["name"]

	// "Сегодня" в той же таймзоне, в которой считаются границы дня,
	// иначе около полуночи день по умолчанию уезжает на сутки
	date := time.Now().In(h.location)
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /facilities/{name}/availability - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		FacilityName: facilityName,
		Date:         date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{name}/availability - Facility not found: facility=%s", facilityName)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{name}/availability - Invalid input: facility=%s", facilityName)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /facilities/{name}/availability - Failed to get availability: facility=%s, error=%v",
				facilityName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{name}/availability - Availability retrieved: facility=%s, slots=%d",
		facilityName, len(result.Slots))

	response := FromUseCaseResponse(result)
	handlers.RespondJSON(w, http.StatusOK, response)
}
