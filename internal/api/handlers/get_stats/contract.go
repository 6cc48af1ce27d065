package get_stats

import (
	"context"

	"github.com/vecindad/VCN-ReservationService/internal/domain"
	"github.com/vecindad/VCN-ReservationService/internal/service/stats"
)

type StatsService interface {
	GetStats(ctx context.Context, role domain.Role) (*stats.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
