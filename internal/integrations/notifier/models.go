package notifier

// Event событие для сервиса уведомлений
type Event struct {
	Type          string  `json:"type"`
	ReservationID int64   `json:"reservationId"`
	UserID        int64   `json:"userId"`
	Facility      string  `json:"facility"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Price         float64 `json:"price"`
}

// Типы событий
const (
	EventReservationCreated   = "reservation.created"
	EventReservationCancelled = "reservation.cancelled"
)
