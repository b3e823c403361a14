package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PeriodModel: término académico; dueño de un calendario de fechas.
type PeriodModel struct {
	PeriodID uuid.UUID `gorm:"column:period_id;type:uuid;default:gen_random_uuid();primaryKey" json:"period_id"`

	PeriodAcademyID uuid.UUID `gorm:"column:period_academy_id;type:uuid;not null;index" json:"period_academy_id"`

	PeriodName string `gorm:"column:period_name;type:text;not null" json:"period_name"`
	PeriodYear int16  `gorm:"column:period_year;type:smallint;not null" json:"period_year"`

	PeriodCreatedAt time.Time      `gorm:"column:period_created_at;autoCreateTime" json:"period_created_at"`
	PeriodUpdatedAt *time.Time     `gorm:"column:period_updated_at;autoUpdateTime" json:"period_updated_at,omitempty"`
	PeriodDeletedAt gorm.DeletedAt `gorm:"column:period_deleted_at;index" json:"period_deleted_at,omitempty"`
}

func (PeriodModel) TableName() string { return "periods" }
