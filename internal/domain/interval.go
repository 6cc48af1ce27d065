package domain

import "time"

// Overlaps проверяет пересечение двух полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd)
// Интервалы, которые только касаются границами, НЕ считаются пересекающимися:
// бронирования "встык" допустимы
//
// Примеры:
// - [10:00, 11:00) и [10:30, 11:30) → ЕСТЬ пересечение (10:30-11:00)
// - [10:00, 11:00) и [11:00, 12:00) → НЕТ пересечения (граничат)
// - [10:00, 11:00) и [09:00, 10:00) → НЕТ пересечения (граничат)
//
// Эта функция - единственный источник семантики пересечения в системе.
// SQL-предикаты в репозиториях и exclusion constraint в миграциях
// обязаны использовать те же полуоткрытые границы
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
