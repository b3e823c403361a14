package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrollmentModel: alumno inscrito en una franja de horario.
// La baja es lógica (is_active = false); reinscribir reactiva la fila
// existente en lugar de crear una nueva.
type EnrollmentModel struct {
	EnrollmentID uuid.UUID `gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_id"`

	EnrollmentAcademyID  uuid.UUID `gorm:"column:enrollment_academy_id;type:uuid;not null;index" json:"enrollment_academy_id"`
	EnrollmentStudentID  uuid.UUID `gorm:"column:enrollment_student_id;type:uuid;not null;index:idx_enrollment_student_schedule" json:"enrollment_student_id"`
	EnrollmentScheduleID uuid.UUID `gorm:"column:enrollment_schedule_id;type:uuid;not null;index:idx_enrollment_student_schedule" json:"enrollment_schedule_id"`

	EnrollmentIsActive bool `gorm:"column:enrollment_is_active;not null;default:true" json:"enrollment_is_active"`

	EnrollmentCreatedAt time.Time      `gorm:"column:enrollment_created_at;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt *time.Time     `gorm:"column:enrollment_updated_at;autoUpdateTime" json:"enrollment_updated_at,omitempty"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollment_deleted_at;index" json:"enrollment_deleted_at,omitempty"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }
