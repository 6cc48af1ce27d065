package domain

import "time"

// Facility represents a shared bookable resource with finite concurrent capacity
type Facility struct {
	ID   int64
	Name string

	// Цена за одно бронирование в момент обращения
	Price float64

	// Максимальное число одновременных бронирований в любой пересекающийся момент времени
	Capacity int

	// Отображаемые атрибуты, не участвуют в логике бронирования
	Icon        *string
	Color       *string
	Description *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasSpotsFor возвращает true, если при указанной занятости остаются свободные места
func (f *Facility) HasSpotsFor(occupied int) bool {
	return occupied < f.Capacity
}
