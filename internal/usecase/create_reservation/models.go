package create_reservation

import "time"

// Request запрос на создание бронирования
type Request struct {
	UserID       int64
	FacilityName string
	StartTime    time.Time
	EndTime      time.Time
}

// Response созданное бронирование
type Response struct {
	ID           int64
	UserID       int64
	FacilityName string
	StartTime    time.Time
	EndTime      time.Time
	Price        float64
	Status       string
	CreatedAt    time.Time
}
