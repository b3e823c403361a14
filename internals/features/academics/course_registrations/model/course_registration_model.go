package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseRegistrationModel: matrícula de un alumno en un curso, es decir la
// tripleta (profesor, materia, periodo) dentro de la academia.
type CourseRegistrationModel struct {
	CourseRegistrationID uuid.UUID `gorm:"column:course_registration_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_registration_id"`

	CourseRegistrationAcademyID   uuid.UUID `gorm:"column:course_registration_academy_id;type:uuid;not null;index" json:"course_registration_academy_id"`
	CourseRegistrationStudentID   uuid.UUID `gorm:"column:course_registration_student_id;type:uuid;not null;index" json:"course_registration_student_id"`
	CourseRegistrationProfessorID uuid.UUID `gorm:"column:course_registration_professor_id;type:uuid;not null;index" json:"course_registration_professor_id"`
	CourseRegistrationSubjectID   uuid.UUID `gorm:"column:course_registration_subject_id;type:uuid;not null" json:"course_registration_subject_id"`
	CourseRegistrationPeriodID    uuid.UUID `gorm:"column:course_registration_period_id;type:uuid;not null;index" json:"course_registration_period_id"`

	CourseRegistrationCreatedAt time.Time      `gorm:"column:course_registration_created_at;autoCreateTime" json:"course_registration_created_at"`
	CourseRegistrationUpdatedAt *time.Time     `gorm:"column:course_registration_updated_at;autoUpdateTime" json:"course_registration_updated_at,omitempty"`
	CourseRegistrationDeletedAt gorm.DeletedAt `gorm:"column:course_registration_deleted_at;index" json:"course_registration_deleted_at,omitempty"`
}

func (CourseRegistrationModel) TableName() string { return "course_registrations" }
