package domain

// Business validation constants
const (
	MinFacilityPrice    = 0.0
	MinFacilityCapacity = 1
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не учитываемых при подсчёте занятости
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}
