package service

import (
	"fmt"
	"strconv"
	"strings"

	"armonia_backend/internals/features/scheduling/schedules/model"
)

// Slot es la forma en memoria de una franja: día + minutos desde medianoche.
// Toda la lógica de cruces trabaja sobre Slot para poder probarse sin DB.
type Slot struct {
	DayOfWeek int16
	StartMin  int
	EndMin    int
}

var dayNames = map[int16]string{
	1: "lunes", 2: "martes", 3: "miércoles", 4: "jueves",
	5: "viernes", 6: "sábado", 7: "domingo",
}

func DayName(d int16) string {
	if n, ok := dayNames[d]; ok {
		return n
	}
	return fmt.Sprintf("día %d", d)
}

// ParseClock convierte "HH:MM" (acepta también "HH:MM:SS", como devuelve
// Postgres para columnas time) a minutos desde medianoche.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("hora inválida: %q (se espera HH:MM)", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("hora inválida: %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("hora inválida: %q", s)
	}
	return h*60 + m, nil
}

func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// Overlaps aplica la semántica de intervalos semiabiertos [start, end):
// una clase que termina 10:00 no choca con otra que empieza 10:00.
func Overlaps(a, b Slot) bool {
	return a.DayOfWeek == b.DayOfWeek && a.StartMin < b.EndMin && b.StartMin < a.EndMin
}

// SlotFromSchedule parsea las horas de un schedule ya persistido.
func SlotFromSchedule(s *model.ScheduleModel) (Slot, error) {
	start, err := ParseClock(s.ScheduleStartTime)
	if err != nil {
		return Slot{}, err
	}
	end, err := ParseClock(s.ScheduleEndTime)
	if err != nil {
		return Slot{}, err
	}
	return Slot{DayOfWeek: s.ScheduleDayOfWeek, StartMin: start, EndMin: end}, nil
}

// ValidateSlot revisa los invariantes de una franja nueva antes de escribirla.
func ValidateSlot(dayOfWeek int16, startTime, endTime string) (Slot, error) {
	if dayOfWeek < 1 || dayOfWeek > 7 {
		return Slot{}, fmt.Errorf("día de la semana inválido: %d (1 = lunes ... 7 = domingo)", dayOfWeek)
	}
	start, err := ParseClock(startTime)
	if err != nil {
		return Slot{}, err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return Slot{}, err
	}
	if start >= end {
		return Slot{}, fmt.Errorf("la hora de inicio (%s) debe ser anterior a la de fin (%s)", FormatClock(start), FormatClock(end))
	}
	return Slot{DayOfWeek: dayOfWeek, StartMin: start, EndMin: end}, nil
}
