package get_stats

import (
	"errors"
	"net/http"

	"github.com/vecindad/VCN-ReservationService/internal/api/handlers"
	"github.com/vecindad/VCN-ReservationService/internal/api/middleware"
	"github.com/vecindad/VCN-ReservationService/internal/service/stats"
)

const msgForbidden = "доступ запрещен"

type Handler struct {
	service StatsService
	logger  Logger
}

func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role := middleware.RoleFromContext(r.Context())

	result, err := h.service.GetStats(r.Context(), role)
	if err != nil {
		switch {
		case errors.Is(err, stats.ErrAccessDenied):
			h.logger.Warn("GET /admin/stats - Access denied: role=%s", role)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /admin/stats - Failed to get stats: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/stats - Stats retrieved successfully: total=%d", result.TotalReservations)
	handlers.RespondJSON(w, http.StatusOK, result)
}
