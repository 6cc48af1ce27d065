package update_facility

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vecindad/VCN-ReservationService/internal/api/handlers"
	"github.com/vecindad/VCN-ReservationService/internal/api/middleware"
	"github.com/vecindad/VCN-ReservationService/internal/service/facilities"
)

const (
	msgInvalidFacilityID  = "некорректный ID объекта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные цена или вместимость"
	msgNotFound           = "объект не найден"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service FacilityService
	logger  Logger
}

func NewHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/facilities/{facilityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role := middleware.RoleFromContext(r.Context())

	// Извлекаем facilityId из URL
	vars := mux.Vars(r)
	facilityIDStr := vars["facilityId"]

	facilityID, err := strconv.ParseInt(facilityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /facilities/{id} - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	var req UpdateFacilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /facilities/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(facilityID, role))
	if err != nil {
		switch {
		case errors.Is(err, facilities.ErrAccessDenied):
			h.logger.Warn("PUT /facilities/{id} - Access denied: facility_id=%d, role=%s", facilityID, role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, facilities.ErrInvalidInput):
			h.logger.Warn("PUT /facilities/{id} - Invalid input: facility_id=%d, error=%v", facilityID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, facilities.ErrFacilityNotFound):
			h.logger.Warn("PUT /facilities/{id} - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /facilities/{id} - Failed to update facility: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /facilities/{id} - Facility updated successfully: facility_id=%d, price=%.2f, capacity=%d",
		result.ID, result.Price, result.Capacity)
	handlers.RespondJSON(w, http.StatusOK, result)
}
