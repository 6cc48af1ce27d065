package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecindad/VCN-ReservationService/internal/domain"
)

type fakeReservationRepo struct {
	stats *domain.Stats
	err   error
}

func (r *fakeReservationRepo) GetStats(_ context.Context) (*domain.Stats, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.stats, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetStats_Admin(t *testing.T) {
	repo := &fakeReservationRepo{stats: &domain.Stats{
		TotalReservations:   12,
		TotalEarnings:       145.50,
		MostPopularFacility: "Piscina",
	}}
	svc := NewService(repo, nopLogger{})

	result, err := svc.GetStats(context.Background(), domain.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, int64(12), result.TotalReservations)
	assert.InDelta(t, 145.50, result.TotalEarnings, 0.001)
	assert.Equal(t, "Piscina", result.MostPopularFacility)
}

func TestGetStats_ResidentDenied(t *testing.T) {
	repo := &fakeReservationRepo{stats: &domain.Stats{}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetStats(context.Background(), domain.RoleResident)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetStats_RepositoryError(t *testing.T) {
	repo := &fakeReservationRepo{err: errors.New("connection reset")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetStats(context.Background(), domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetStats_EmptyStore(t *testing.T) {
	repo := &fakeReservationRepo{stats: &domain.Stats{}}
	svc := NewService(repo, nopLogger{})

	result, err := svc.GetStats(context.Background(), domain.RoleAdmin)
	require.NoError(t, err)

	assert.Zero(t, result.TotalReservations)
	assert.Zero(t, result.TotalEarnings)
	assert.Empty(t, result.MostPopularFacility)
}
