package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AttendanceStatusEnum string

const (
	AttendancePresente    AttendanceStatusEnum = "presente"
	AttendanceAusente     AttendanceStatusEnum = "ausente"
	AttendanceTarde       AttendanceStatusEnum = "tarde"
	AttendanceJustificado AttendanceStatusEnum = "justificado"
)

// ClassSessionModel: registro de una sesión de clase para una matrícula y una
// fecha del calendario del periodo (asistencia, tarea y notas del profesor).
type ClassSessionModel struct {
	ClassSessionID uuid.UUID `gorm:"column:class_session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_session_id"`

	ClassSessionAcademyID      uuid.UUID `gorm:"column:class_session_academy_id;type:uuid;not null;index" json:"class_session_academy_id"`
	ClassSessionRegistrationID uuid.UUID `gorm:"column:class_session_registration_id;type:uuid;not null;index:idx_class_session_reg_date" json:"class_session_registration_id"`

	ClassSessionDate datatypes.Date `gorm:"column:class_session_date;type:date;not null;index:idx_class_session_reg_date" json:"class_session_date"`

	ClassSessionAttendance AttendanceStatusEnum `gorm:"column:class_session_attendance;type:varchar(20);not null;default:'presente'" json:"class_session_attendance"`
	ClassSessionAssignment *string              `gorm:"column:class_session_assignment;type:text" json:"class_session_assignment,omitempty"`
	ClassSessionNotes      *string              `gorm:"column:class_session_notes;type:text" json:"class_session_notes,omitempty"`

	ClassSessionCreatedAt time.Time      `gorm:"column:class_session_created_at;autoCreateTime" json:"class_session_created_at"`
	ClassSessionUpdatedAt *time.Time     `gorm:"column:class_session_updated_at;autoUpdateTime" json:"class_session_updated_at,omitempty"`
	ClassSessionDeletedAt gorm.DeletedAt `gorm:"column:class_session_deleted_at;index" json:"class_session_deleted_at,omitempty"`
}

func (ClassSessionModel) TableName() string { return "class_sessions" }
