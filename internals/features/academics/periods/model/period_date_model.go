package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PeriodDateTypeEnum string

const (
	PeriodDateClase   PeriodDateTypeEnum = "clase"
	PeriodDateFeriado PeriodDateTypeEnum = "feriado"
	PeriodDateInicio  PeriodDateTypeEnum = "inicio"
	PeriodDateCierre  PeriodDateTypeEnum = "cierre"
	PeriodDateRecital PeriodDateTypeEnum = "recital"
	PeriodDateOtro    PeriodDateTypeEnum = "otro"
)

// Las fechas con tipo "clase" definen el calendario de sesiones del curso.
type PeriodDateModel struct {
	PeriodDateID uuid.UUID `gorm:"column:period_date_id;type:uuid;default:gen_random_uuid();primaryKey" json:"period_date_id"`

	PeriodDateAcademyID uuid.UUID `gorm:"column:period_date_academy_id;type:uuid;not null;index" json:"period_date_academy_id"`
	PeriodDatePeriodID  uuid.UUID `gorm:"column:period_date_period_id;type:uuid;not null;index" json:"period_date_period_id"`

	PeriodDateDate datatypes.Date     `gorm:"column:period_date_date;type:date;not null" json:"period_date_date"`
	PeriodDateType PeriodDateTypeEnum `gorm:"column:period_date_type;type:period_date_type_enum;not null;default:'clase'" json:"period_date_type"`
	PeriodDateNote *string            `gorm:"column:period_date_note;type:text" json:"period_date_note,omitempty"`

	PeriodDateCreatedAt time.Time      `gorm:"column:period_date_created_at;autoCreateTime" json:"period_date_created_at"`
	PeriodDateDeletedAt gorm.DeletedAt `gorm:"column:period_date_deleted_at;index" json:"period_date_deleted_at,omitempty"`
}

func (PeriodDateModel) TableName() string { return "period_dates" }
