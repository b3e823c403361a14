package service

import (
	"errors"
	"time"
)

// ErrNoClassDates: el curso no tiene fechas tipo "clase", no hay nada que
// facturar y la operación completa debe fallar.
var ErrNoClassDates = errors.New("el curso no tiene fechas de clase registradas")

func truncMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthlyPeriods toma las fechas de clase de un curso y devuelve el día 1 de
// cada mes calendario entre min(fechas) y max(fechas), ambos inclusive.
// Con cero fechas devuelve ErrNoClassDates.
func MonthlyPeriods(dates []time.Time) ([]time.Time, error) {
	if len(dates) == 0 {
		return nil, ErrNoClassDates
	}

	min, max := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}

	var months []time.Time
	last := truncMonth(max)
	for m := truncMonth(min); !m.After(last); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months, nil
}

// LastDayOfMonth devuelve el último día del mes de t (para derivar "atrasado").
func LastDayOfMonth(t time.Time) time.Time {
	return truncMonth(t).AddDate(0, 1, -1)
}

// IsOverdue: una factura pendiente cuyo mes ya terminó se muestra atrasada.
// today puede traer hora; atrasada recién desde el día 1 del mes siguiente.
func IsOverdue(month time.Time, today time.Time) bool {
	firstOfNext := truncMonth(month).AddDate(0, 1, 0)
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return !today.Before(firstOfNext)
}
