package get_availability

import "time"

// Request запрос занятости объекта на календарный день
type Request struct {
	FacilityName string
	Date         time.Time
}

// Slot занятость одной группы бронирований с общим временем начала
type Slot struct {
	StartTime time.Time
	EndTime   time.Time
	Occupied  int
	Capacity  int
}

// Response занятость объекта на день
type Response struct {
	FacilityName string
	Date         time.Time
	Capacity     int
	Slots        []Slot
}
