package get_my_reservations

import (
	"context"

	"github.com/vecindad/VCN-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	ListUserReservations(ctx context.Context, userID int64) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
