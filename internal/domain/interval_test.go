package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"полное совпадение", at(0), at(2), at(0), at(2), true},
		{"частичное пересечение справа", at(0), at(2), at(1), at(3), true},
		{"частичное пересечение слева", at(1), at(3), at(0), at(2), true},
		{"один внутри другого", at(0), at(4), at(1), at(2), true},
		{"касание концов не пересекается", at(0), at(2), at(2), at(4), false},
		{"касание в обратном порядке не пересекается", at(2), at(4), at(0), at(2), false},
		{"непересекающиеся интервалы", at(0), at(1), at(2), at(3), false},
		{"общее начало", at(0), at(1), at(0), at(3), true},
		{"общий конец", at(0), at(3), at(2), at(3), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.want, got)

			// Пересечение симметрично
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
