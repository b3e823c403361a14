package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleModel: franja semanal recurrente de un profesor.
// Invariante: start_time < end_time; dos schedules del mismo profesor
// no pueden cruzarse el mismo día (se valida al escribir).
type ScheduleModel struct {
	ScheduleID uuid.UUID `gorm:"column:schedule_id;type:uuid;default:gen_random_uuid();primaryKey" json:"schedule_id"`

	ScheduleAcademyID   uuid.UUID `gorm:"column:schedule_academy_id;type:uuid;not null;index" json:"schedule_academy_id"`
	ScheduleProfessorID uuid.UUID `gorm:"column:schedule_professor_id;type:uuid;not null;index" json:"schedule_professor_id"`
	ScheduleSubjectID   *uuid.UUID `gorm:"column:schedule_subject_id;type:uuid" json:"schedule_subject_id,omitempty"`

	// 1 = lunes ... 7 = domingo
	ScheduleDayOfWeek int16  `gorm:"column:schedule_day_of_week;type:smallint;not null" json:"schedule_day_of_week"`
	ScheduleStartTime string `gorm:"column:schedule_start_time;type:time;not null" json:"schedule_start_time"` // "HH:MM"
	ScheduleEndTime   string `gorm:"column:schedule_end_time;type:time;not null" json:"schedule_end_time"`     // "HH:MM"

	ScheduleCreatedAt time.Time      `gorm:"column:schedule_created_at;autoCreateTime" json:"schedule_created_at"`
	ScheduleUpdatedAt *time.Time     `gorm:"column:schedule_updated_at;autoUpdateTime" json:"schedule_updated_at,omitempty"`
	ScheduleDeletedAt gorm.DeletedAt `gorm:"column:schedule_deleted_at;index" json:"schedule_deleted_at,omitempty"`
}

func (ScheduleModel) TableName() string { return "schedules" }
