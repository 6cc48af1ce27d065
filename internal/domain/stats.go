package domain

// Stats агрегированная статистика по бронированиям для администратора
type Stats struct {
	TotalReservations int64

	// Сумма зафиксированных цен всех активных бронирований
	TotalEarnings float64

	// Имя объекта с наибольшим числом бронирований.
	// При равенстве берётся лексикографически меньшее имя.
	// Пустая строка, если бронирований нет
	MostPopularFacility string
}
