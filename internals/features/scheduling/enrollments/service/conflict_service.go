package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollModel "armonia_backend/internals/features/scheduling/enrollments/model"
	scheduleModel "armonia_backend/internals/features/scheduling/schedules/model"
	scheduleService "armonia_backend/internals/features/scheduling/schedules/service"
)

// Conflict describe un cruce entre el horario candidato y una inscripción
// activa existente del alumno.
type Conflict struct {
	EnrollmentID uuid.UUID `json:"enrollment_id"`
	ScheduleID   uuid.UUID `json:"schedule_id"`
	Description  string    `json:"description"`
}

// FindStudentConflicts carga las inscripciones activas del alumno en la
// academia (mismo día que el candidato) y filtra los cruces en memoria con la
// semántica semiabierta de Overlaps.
func FindStudentConflicts(db *gorm.DB, academyID, studentID uuid.UUID, candidate scheduleService.Slot) ([]Conflict, error) {
	type row struct {
		enrollModel.EnrollmentModel
		scheduleModel.ScheduleModel
	}

	var rows []row
	err := db.Table("enrollments").
		Select("enrollments.*, schedules.*").
		Joins("JOIN schedules ON schedules.schedule_id = enrollments.enrollment_schedule_id AND schedules.schedule_deleted_at IS NULL").
		Where("enrollments.enrollment_academy_id = ?", academyID).
		Where("enrollments.enrollment_student_id = ?", studentID).
		Where("enrollments.enrollment_is_active = TRUE").
		Where("enrollments.enrollment_deleted_at IS NULL").
		Where("schedules.schedule_day_of_week = ?", candidate.DayOfWeek).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	var conflicts []Conflict
	for i := range rows {
		slot, err := scheduleService.SlotFromSchedule(&rows[i].ScheduleModel)
		if err != nil {
			return nil, fmt.Errorf("horario %s corrupto: %w", rows[i].ScheduleID, err)
		}
		if scheduleService.Overlaps(candidate, slot) {
			conflicts = append(conflicts, Conflict{
				EnrollmentID: rows[i].EnrollmentID,
				ScheduleID:   rows[i].ScheduleID,
				Description: fmt.Sprintf("se cruza con su clase del %s de %s a %s",
					scheduleService.DayName(slot.DayOfWeek),
					scheduleService.FormatClock(slot.StartMin),
					scheduleService.FormatClock(slot.EndMin)),
			})
		}
	}
	return conflicts, nil
}
