package cancel_reservation

import (
	"context"

	"github.com/vecindad/VCN-ReservationService/internal/domain"
)

type ReservationService interface {
	Cancel(ctx context.Context, id int64, requesterID int64, role domain.Role) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
