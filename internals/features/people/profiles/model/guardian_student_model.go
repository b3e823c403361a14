package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GuardianStudentModel: vínculo acudiente ↔ alumno dentro de una academia.
type GuardianStudentModel struct {
	GuardianStudentID uuid.UUID `gorm:"column:guardian_student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"guardian_student_id"`

	GuardianStudentAcademyID  uuid.UUID `gorm:"column:guardian_student_academy_id;type:uuid;not null;index" json:"guardian_student_academy_id"`
	GuardianStudentGuardianID uuid.UUID `gorm:"column:guardian_student_guardian_id;type:uuid;not null;index" json:"guardian_student_guardian_id"`
	GuardianStudentStudentID  uuid.UUID `gorm:"column:guardian_student_student_id;type:uuid;not null;index" json:"guardian_student_student_id"`

	GuardianStudentCreatedAt time.Time      `gorm:"column:guardian_student_created_at;autoCreateTime" json:"guardian_student_created_at"`
	GuardianStudentDeletedAt gorm.DeletedAt `gorm:"column:guardian_student_deleted_at;index" json:"guardian_student_deleted_at,omitempty"`
}

func (GuardianStudentModel) TableName() string { return "guardian_students" }
