package create_reservation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/vecindad/VCN-ReservationService/internal/api/handlers"
	"github.com/vecindad/VCN-ReservationService/internal/api/middleware"
	createReservation "github.com/vecindad/VCN-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgInvalidRange       = "время начала должно быть раньше времени окончания"
	msgFacilityNotFound   = "объект не найден"
	msgDuplicate          = "у вас уже есть пересекающееся бронирование этого объекта"
	msgUnauthorized       = "требуется аутентификация"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidRange):
			h.logger.Warn("POST /reservations - Invalid time range: user_id=%d, facility=%s", userID, req.Facility)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d, facility=%s", userID, req.Facility)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createReservation.ErrFacilityNotFound):
			h.logger.Warn("POST /reservations - Facility not found: user_id=%d, facility=%s", userID, req.Facility)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, createReservation.ErrDuplicateReservation):
			h.logger.Warn("POST /reservations - Duplicate reservation: user_id=%d, facility=%s", userID, req.Facility)
			handlers.RespondConflict(w, msgDuplicate)

		case errors.Is(err, createReservation.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations - Capacity exceeded: user_id=%d, facility=%s", userID, req.Facility)
			handlers.RespondConflict(w, capacityMessage(err))

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, facility=%s, error=%v",
				userID, req.Facility, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, user_id=%d, facility=%s",
		result.ID, userID, result.FacilityName)

	response := FromUseCaseResponse(result)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// capacityMessage строит сообщение с фактической занятостью объекта
func capacityMessage(err error) string {
	var capErr *createReservation.CapacityError
	if errors.As(err, &capErr) {
		return fmt.Sprintf("нет свободных мест: занято %d/%d", capErr.Occupied, capErr.Capacity)
	}
	return "нет свободных мест на выбранный интервал"
}
