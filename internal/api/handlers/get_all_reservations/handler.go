package get_all_reservations

import (
	"net/http"

	"github.com/vecindad/VCN-ReservationService/internal/api/handlers"
	"github.com/vecindad/VCN-ReservationService/internal/api/middleware"
)

const msgUnauthorized = "требуется аутентификация"

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
// Для администратора возвращает бронирования всех пользователей,
// для резидента - только собственные
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	role := middleware.RoleFromContext(r.Context())

	result, err := h.service.ListAll(r.Context(), userID, role)
	if err != nil {
		h.logger.Error("GET /reservations - Failed to get reservations: user_id=%d, role=%s, error=%v",
			userID, role, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved successfully: user_id=%d, role=%s, count=%d",
		userID, role, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
