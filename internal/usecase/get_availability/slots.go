package get_availability

import (
	"github.com/vecindad/VCN-ReservationService/internal/domain"
)

// groupByStart группирует бронирования по одинаковому времени начала
// и возвращает слоты в порядке начала.
//
// Это проекция для отображения, НЕ источник истины о доступности:
// бронирования с разным началом, частично пересекающие слот, в его
// счётчик не попадают. Решение о допуске принимает только движок
// допуска, который считает занятость по настоящему пересечению интервалов.
//
// Конец слота - максимальный конец бронирования в группе, чтобы слот
// покрывал весь занятый группой промежуток
func groupByStart(reservations []*domain.Reservation, capacity int) []Slot {
	slots := make([]Slot, 0)

	for _, res := range reservations {
		if len(slots) > 0 && res.StartTime.Equal(slots[len(slots)-1].StartTime) {
			last := &slots[len(slots)-1]
			last.Occupied++
			if res.EndTime.After(last.EndTime) {
				last.EndTime = res.EndTime
			}
			continue
		}

		slots = append(slots, Slot{
			StartTime: res.StartTime,
			EndTime:   res.EndTime,
			Occupied:  1,
			Capacity:  capacity,
		})
	}

	return slots
}
