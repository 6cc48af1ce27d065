package get_facility

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vecindad/VCN-ReservationService/internal/api/handlers"
	"github.com/vecindad/VCN-ReservationService/internal/service/facilities"
)

const msgNotFound = "объект не найден"

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

// Handle GET /api/v1/facilities/{name}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]

	result, err := h.service.GetByName(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, facilities.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{name} - Facility not found: facility=%s", name)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /facilities/{name} - Failed to get facility: facility=%s, error=%v", name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{name} - Facility retrieved successfully: facility=%s", name)
	handlers.RespondJSON(w, http.StatusOK, result)
}
