package create_reservation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecindad/VCN-ReservationService/internal/domain"
	facilityRepo "github.com/vecindad/VCN-ReservationService/internal/infra/storage/facility"
	reservationRepo "github.com/vecindad/VCN-ReservationService/internal/infra/storage/reservation"
)

// fakeTxManager сериализует транзакции мьютексом - как FOR UPDATE
// сериализует конкурентные допуски по одному объекту
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakeFacilityRepo struct {
	facilities map[string]*domain.Facility
}

func (r *fakeFacilityRepo) GetByNameForUpdate(_ context.Context, name string) (*domain.Facility, error) {
	f, ok := r.facilities[name]
	if !ok {
		return nil, facilityRepo.ErrFacilityNotFound
	}
	copied := *f
	return &copied, nil
}

type fakeReservationRepo struct {
	mu           sync.Mutex
	reservations []*domain.Reservation
	nextID       int64
	createErr    error
}

func (r *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return nil, r.createErr
	}

	r.nextID++
	res.ID = r.nextID
	res.CreatedAt = time.Now()
	stored := *res
	r.reservations = append(r.reservations, &stored)
	return res, nil
}

func (r *fakeReservationRepo) CountActiveOverlapping(_ context.Context, facilityName string, start, end time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, res := range r.reservations {
		if res.FacilityName == facilityName && res.IsActive() &&
			domain.Overlaps(res.StartTime, res.EndTime, start, end) {
			count++
		}
	}
	return count, nil
}

func (r *fakeReservationRepo) ExistsActiveOverlappingForUser(_ context.Context, facilityName string, userID int64, start, end time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, res := range r.reservations {
		if res.FacilityName == facilityName && res.UserID == userID && res.IsActive() &&
			domain.Overlaps(res.StartTime, res.EndTime, start, end) {
			return true, nil
		}
	}
	return false, nil
}

type fakeNotifier struct {
	mu      sync.Mutex
	created []*domain.Reservation
}

func (n *fakeNotifier) ReservationCreated(res *domain.Reservation) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, res)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(taxFactor float64, facilities ...*domain.Facility) (*UseCase, *fakeReservationRepo, *fakeNotifier) {
	facRepo := &fakeFacilityRepo{facilities: make(map[string]*domain.Facility)}
	for _, f := range facilities {
		facRepo.facilities[f.Name] = f
	}

	resRepo := &fakeReservationRepo{}
	notifier := &fakeNotifier{}

	uc := NewUseCase(resRepo, facRepo, &fakeTxManager{}, notifier, taxFactor, nopLogger{})
	return uc, resRepo, notifier
}

func sauna() *domain.Facility {
	return &domain.Facility{ID: 1, Name: "Sauna", Price: 10.00, Capacity: 10}
}

func padel() *domain.Facility {
	return &domain.Facility{ID: 2, Name: "Pádel court 1", Price: 15.00, Capacity: 1}
}

func slot(day, hour int) (time.Time, time.Time) {
	start := time.Date(2026, 1, day, hour, 0, 0, 0, time.UTC)
	return start, start.Add(time.Hour)
}

func TestExecute_Success(t *testing.T) {
	uc, _, notifier := newTestUseCase(1.0, sauna())

	start, end := slot(20, 10)
	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       1,
		FacilityName: "Sauna",
		StartTime:    start,
		EndTime:      end,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Sauna", resp.FacilityName)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.InDelta(t, 10.00, resp.Price, 0.001)

	require.Len(t, notifier.created, 1)
	assert.Equal(t, resp.ID, notifier.created[0].ID)
}

func TestExecute_PriceFrozenWithTaxFactor(t *testing.T) {
	uc, _, _ := newTestUseCase(1.21, sauna())

	start, end := slot(20, 10)
	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       1,
		FacilityName: "Sauna",
		StartTime:    start,
		EndTime:      end,
	})

	require.NoError(t, err)
	assert.InDelta(t, 12.10, resp.Price, 0.001)
}

func TestExecute_PriceImmutableAfterFacilityPriceChange(t *testing.T) {
	facRepo := &fakeFacilityRepo{facilities: map[string]*domain.Facility{"Sauna": sauna()}}
	resRepo := &fakeReservationRepo{}
	uc := NewUseCase(resRepo, facRepo, &fakeTxManager{}, &fakeNotifier{}, 1.0, nopLogger{})

	start, end := slot(20, 10)
	first, err := uc.Execute(context.Background(), &Request{
		UserID: 1, FacilityName: "Sauna", StartTime: start, EndTime: end,
	})
	require.NoError(t, err)
	assert.InDelta(t, 10.00, first.Price, 0.001)

	// Реестр поднимает цену объекта
	facRepo.facilities["Sauna"].Price = 25.00

	// Уже созданное бронирование хранит цену момента допуска
	require.Len(t, resRepo.reservations, 1)
	assert.InDelta(t, 10.00, resRepo.reservations[0].Price, 0.001)

	// Новый допуск фиксирует уже новую цену
	start2, end2 := slot(21, 10)
	second, err := uc.Execute(context.Background(), &Request{
		UserID: 2, FacilityName: "Sauna", StartTime: start2, EndTime: end2,
	})
	require.NoError(t, err)
	assert.InDelta(t, 25.00, second.Price, 0.001)

	// Первое бронирование новую цену не наследует
	assert.InDelta(t, 10.00, resRepo.reservations[0].Price, 0.001)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc, _, notifier := newTestUseCase(1.0, sauna())
	start, end := slot(20, 10)

	tests := []struct {
		name string
		req  *Request
		want error
	}{
		{
			name: "нулевой пользователь",
			req:  &Request{UserID: 0, FacilityName: "Sauna", StartTime: start, EndTime: end},
			want: ErrInvalidInput,
		},
		{
			name: "пустое имя объекта",
			req:  &Request{UserID: 1, FacilityName: "", StartTime: start, EndTime: end},
			want: ErrInvalidInput,
		},
		{
			name: "нулевое время",
			req:  &Request{UserID: 1, FacilityName: "Sauna"},
			want: ErrInvalidInput,
		},
		{
			name: "начало равно концу",
			req:  &Request{UserID: 1, FacilityName: "Sauna", StartTime: start, EndTime: start},
			want: ErrInvalidRange,
		},
		{
			name: "начало позже конца",
			req:  &Request{UserID: 1, FacilityName: "Sauna", StartTime: end, EndTime: start},
			want: ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.Empty(t, notifier.created)
}

func TestExecute_FacilityNotFound(t *testing.T) {
	uc, _, _ := newTestUseCase(1.0, sauna())

	start, end := slot(20, 10)
	_, err := uc.Execute(context.Background(), &Request{
		UserID:       1,
		FacilityName: "Jacuzzi",
		StartTime:    start,
		EndTime:      end,
	})

	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestExecute_DuplicateReservation(t *testing.T) {
	uc, _, notifier := newTestUseCase(1.0, sauna())
	start, end := slot(20, 10)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 1, FacilityName: "Sauna", StartTime: start, EndTime: end,
	})
	require.NoError(t, err)

	// Частично пересекающаяся попытка того же пользователя
	_, err = uc.Execute(context.Background(), &Request{
		UserID:       1,
		FacilityName: "Sauna",
		StartTime:    start.Add(30 * time.Minute),
		EndTime:      end.Add(30 * time.Minute),
	})
	assert.ErrorIs(t, err, ErrDuplicateReservation)

	// Встык - интервалы полуоткрытые, дубликата нет
	_, err = uc.Execute(context.Background(), &Request{
		UserID: 1, FacilityName: "Sauna", StartTime: end, EndTime: end.Add(time.Hour),
	})
	assert.NoError(t, err)

	assert.Len(t, notifier.created, 2)
}

func TestExecute_CapacityExceeded(t *testing.T) {
	uc, _, notifier := newTestUseCase(1.0, padel())
	start, end := slot(20, 10)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 1, FacilityName: "Pádel court 1", StartTime: start, EndTime: end,
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{
		UserID: 2, FacilityName: "Pádel court 1", StartTime: start, EndTime: end,
	})
	require.ErrorIs(t, err, ErrCapacityExceeded)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 1, capErr.Occupied)
	assert.Equal(t, 1, capErr.Capacity)

	// Уведомление только об успешном допуске
	assert.Len(t, notifier.created, 1)
}

func TestExecute_CapacityFreesAfterInterval(t *testing.T) {
	uc, _, _ := newTestUseCase(1.0, padel())
	start, end := slot(20, 10)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 1, FacilityName: "Pádel court 1", StartTime: start, EndTime: end,
	})
	require.NoError(t, err)

	// Интервал встык не занимает вместимость предыдущего
	_, err = uc.Execute(context.Background(), &Request{
		UserID: 2, FacilityName: "Pádel court 1", StartTime: end, EndTime: end.Add(time.Hour),
	})
	assert.NoError(t, err)
}

func TestExecute_StoreOverlapConflictMapsToDuplicate(t *testing.T) {
	uc, resRepo, _ := newTestUseCase(1.0, sauna())
	resRepo.createErr = reservationRepo.ErrOverlapConflict

	start, end := slot(20, 10)
	_, err := uc.Execute(context.Background(), &Request{
		UserID: 1, FacilityName: "Sauna", StartTime: start, EndTime: end,
	})

	assert.ErrorIs(t, err, ErrDuplicateReservation)
}

func TestExecute_StoreFailureIsInternal(t *testing.T) {
	uc, resRepo, notifier := newTestUseCase(1.0, sauna())
	resRepo.createErr = errors.New("connection reset")

	start, end := slot(20, 10)
	_, err := uc.Execute(context.Background(), &Request{
		UserID: 1, FacilityName: "Sauna", StartTime: start, EndTime: end,
	})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, notifier.created)
}

func TestExecute_ConcurrentAdmissions(t *testing.T) {
	uc, resRepo, _ := newTestUseCase(1.0, padel())
	start, end := slot(20, 10)

	const attempts = 20

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), &Request{
				UserID:       int64(i + 1),
				FacilityName: "Pádel court 1",
				StartTime:    start,
				EndTime:      end,
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrCapacityExceeded)
		}
	}

	// Вместимость 1: ровно один конкурентный допуск проходит
	assert.Equal(t, 1, succeeded)
	assert.Len(t, resRepo.reservations, 1)
}
