package get_all_reservations

import (
	"context"

	"github.com/vecindad/VCN-ReservationService/internal/domain"
	"github.com/vecindad/VCN-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	ListAll(ctx context.Context, userID int64, role domain.Role) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
