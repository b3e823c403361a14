package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"14:30:00", 870, false}, // formato que devuelve Postgres
		{" 10:15 ", 615, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"0900", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestOverlaps(t *testing.T) {
	slot := func(day int16, start, end int) Slot {
		return Slot{DayOfWeek: day, StartMin: start, EndMin: end}
	}

	tests := []struct {
		name string
		a, b Slot
		want bool
	}{
		{"mismo horario exacto", slot(1, 540, 600), slot(1, 540, 600), true},
		{"solapamiento parcial", slot(1, 540, 600), slot(1, 570, 630), true},
		{"contenido dentro de otro", slot(1, 540, 720), slot(1, 600, 660), true},
		{"clases seguidas no chocan", slot(1, 540, 600), slot(1, 600, 660), false},
		{"clases seguidas al revés", slot(1, 600, 660), slot(1, 540, 600), false},
		{"otro día de la semana", slot(1, 540, 600), slot(2, 540, 600), false},
		{"sin contacto", slot(3, 540, 600), slot(3, 700, 760), false},
		{"un minuto de cruce", slot(5, 540, 601), slot(5, 600, 660), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			// la relación es simétrica
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a))
		})
	}
}

func TestValidateSlot(t *testing.T) {
	t.Run("franja válida", func(t *testing.T) {
		got, err := ValidateSlot(3, "09:00", "10:30")
		require.NoError(t, err)
		assert.Equal(t, Slot{DayOfWeek: 3, StartMin: 540, EndMin: 630}, got)
	})

	t.Run("inicio igual al fin", func(t *testing.T) {
		_, err := ValidateSlot(1, "09:00", "09:00")
		assert.Error(t, err)
	})

	t.Run("inicio después del fin", func(t *testing.T) {
		_, err := ValidateSlot(1, "10:00", "09:00")
		assert.Error(t, err)
	})

	t.Run("día fuera de rango", func(t *testing.T) {
		_, err := ValidateSlot(0, "09:00", "10:00")
		assert.Error(t, err)
		_, err = ValidateSlot(8, "09:00", "10:00")
		assert.Error(t, err)
	})
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "lunes", DayName(1))
	assert.Equal(t, "domingo", DayName(7))
	assert.Equal(t, "día 9", DayName(9))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "23:59", FormatClock(1439))
}
