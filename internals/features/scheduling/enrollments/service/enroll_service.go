package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollModel "armonia_backend/internals/features/scheduling/enrollments/model"
	scheduleModel "armonia_backend/internals/features/scheduling/schedules/model"
	scheduleService "armonia_backend/internals/features/scheduling/schedules/service"
)

// EnrollOutcome clasifica el resultado de inscribir un alumno en una franja.
// Exactamente uno de Duplicate / Conflicts / Enrollment queda poblado.
type EnrollOutcome struct {
	Enrollment  *enrollModel.EnrollmentModel
	Reactivated bool
	Duplicate   *enrollModel.EnrollmentModel
	Conflicts   []Conflict
}

// EnrollStudent aplica la política de inscripción:
//   - fila activa existente  → duplicado, se rechaza sin tocar nada
//   - fila inactiva existente → se reactiva (previa revisión de cruces)
//   - sin fila               → se crea (previa revisión de cruces)
//
// La revisión de cruces usa la semántica semiabierta: terminar a la hora
// exacta en que empieza otra clase no es cruce.
func EnrollStudent(db *gorm.DB, academyID, studentID uuid.UUID, schedule *scheduleModel.ScheduleModel) (EnrollOutcome, error) {
	var existing enrollModel.EnrollmentModel
	err := db.Where("enrollment_academy_id = ? AND enrollment_student_id = ? AND enrollment_schedule_id = ?",
		academyID, studentID, schedule.ScheduleID).
		First(&existing).Error
	found := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return EnrollOutcome{}, err
	}

	if found && existing.EnrollmentIsActive {
		return EnrollOutcome{Duplicate: &existing}, nil
	}

	slot, err := scheduleService.SlotFromSchedule(schedule)
	if err != nil {
		return EnrollOutcome{}, err
	}
	conflicts, err := FindStudentConflicts(db, academyID, studentID, slot)
	if err != nil {
		return EnrollOutcome{}, err
	}
	if len(conflicts) > 0 {
		return EnrollOutcome{Conflicts: conflicts}, nil
	}

	if found {
		existing.EnrollmentIsActive = true
		if err := db.Save(&existing).Error; err != nil {
			return EnrollOutcome{}, err
		}
		return EnrollOutcome{Enrollment: &existing, Reactivated: true}, nil
	}

	row := enrollModel.EnrollmentModel{
		EnrollmentAcademyID:  academyID,
		EnrollmentStudentID:  studentID,
		EnrollmentScheduleID: schedule.ScheduleID,
		EnrollmentIsActive:   true,
	}
	if err := db.Create(&row).Error; err != nil {
		return EnrollOutcome{}, err
	}
	return EnrollOutcome{Enrollment: &row}, nil
}
