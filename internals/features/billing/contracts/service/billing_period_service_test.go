package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestMonthlyPeriods(t *testing.T) {
	t.Run("curso de marzo a junio produce 4 meses", func(t *testing.T) {
		dates := []time.Time{
			d(2024, time.March, 15),
			d(2024, time.April, 5),
			d(2024, time.May, 20),
			d(2024, time.June, 10),
		}
		months, err := MonthlyPeriods(dates)
		require.NoError(t, err)
		assert.Equal(t, []time.Time{
			d(2024, time.March, 1),
			d(2024, time.April, 1),
			d(2024, time.May, 1),
			d(2024, time.June, 1),
		}, months)
	})

	t.Run("el orden de las fechas no importa", func(t *testing.T) {
		dates := []time.Time{
			d(2024, time.June, 10),
			d(2024, time.March, 15),
			d(2024, time.May, 20),
		}
		months, err := MonthlyPeriods(dates)
		require.NoError(t, err)
		require.Len(t, months, 4)
		assert.Equal(t, d(2024, time.March, 1), months[0])
		assert.Equal(t, d(2024, time.June, 1), months[3])
	})

	t.Run("una sola fecha produce un mes", func(t *testing.T) {
		months, err := MonthlyPeriods([]time.Time{d(2024, time.August, 29)})
		require.NoError(t, err)
		assert.Equal(t, []time.Time{d(2024, time.August, 1)}, months)
	})

	t.Run("mismo mes con varias fechas produce un mes", func(t *testing.T) {
		months, err := MonthlyPeriods([]time.Time{
			d(2024, time.August, 1),
			d(2024, time.August, 31),
		})
		require.NoError(t, err)
		assert.Len(t, months, 1)
	})

	t.Run("cruce de año", func(t *testing.T) {
		months, err := MonthlyPeriods([]time.Time{
			d(2024, time.November, 20),
			d(2025, time.February, 3),
		})
		require.NoError(t, err)
		assert.Equal(t, []time.Time{
			d(2024, time.November, 1),
			d(2024, time.December, 1),
			d(2025, time.January, 1),
			d(2025, time.February, 1),
		}, months)
	})

	t.Run("sin fechas de clase falla la operación", func(t *testing.T) {
		_, err := MonthlyPeriods(nil)
		assert.ErrorIs(t, err, ErrNoClassDates)

		_, err = MonthlyPeriods([]time.Time{})
		assert.ErrorIs(t, err, ErrNoClassDates)
	})
}

func TestLastDayOfMonth(t *testing.T) {
	assert.Equal(t, d(2024, time.February, 29), LastDayOfMonth(d(2024, time.February, 10))) // bisiesto
	assert.Equal(t, d(2023, time.February, 28), LastDayOfMonth(d(2023, time.February, 10)))
	assert.Equal(t, d(2024, time.December, 31), LastDayOfMonth(d(2024, time.December, 1)))
}

func TestIsOverdue(t *testing.T) {
	march := d(2024, time.March, 1)

	assert.False(t, IsOverdue(march, d(2024, time.March, 15)), "dentro del mes no está atrasada")
	assert.False(t, IsOverdue(march, d(2024, time.March, 31)), "el último día del mes todavía no")
	assert.True(t, IsOverdue(march, d(2024, time.April, 1)), "el día siguiente ya sí")
	assert.True(t, IsOverdue(march, d(2024, time.July, 10)))
}

func TestIsOverdueIgnoresClockTime(t *testing.T) {
	march := d(2024, time.March, 1)

	// time.Now() trae hora; el mediodía del 31 sigue dentro del mes
	lastDayNoon := time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC)
	assert.False(t, IsOverdue(march, lastDayNoon))

	lastDayAlmostMidnight := time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)
	assert.False(t, IsOverdue(march, lastDayAlmostMidnight))

	firstOfAprilEarly := time.Date(2024, time.April, 1, 0, 0, 1, 0, time.UTC)
	assert.True(t, IsOverdue(march, firstOfAprilEarly))
}
