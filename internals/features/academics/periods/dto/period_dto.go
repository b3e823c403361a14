// internals/features/academics/periods/dto/period_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "armonia_backend/internals/features/academics/periods/model"
)

/* =============== REQUESTS =============== */

type CreatePeriodRequest struct {
	PeriodName string `json:"period_name" validate:"required,min=3"`
	PeriodYear int16  `json:"period_year" validate:"required,gte=2000,lte=2100"`
}

func (r CreatePeriodRequest) ToModel(academyID uuid.UUID) *m.PeriodModel {
	return &m.PeriodModel{
		PeriodAcademyID: academyID,
		PeriodName:      r.PeriodName,
		PeriodYear:      r.PeriodYear,
	}
}

type UpdatePeriodRequest struct {
	PeriodName *string `json:"period_name" validate:"omitempty,min=3"`
	PeriodYear *int16  `json:"period_year" validate:"omitempty,gte=2000,lte=2100"`
}

func (r UpdatePeriodRequest) ApplyTo(mo *m.PeriodModel) {
	if r.PeriodName != nil {
		mo.PeriodName = *r.PeriodName
	}
	if r.PeriodYear != nil {
		mo.PeriodYear = *r.PeriodYear
	}
}

// Alta de fechas del calendario (bulk)
type AddPeriodDatesRequest struct {
	Dates []PeriodDateItem `json:"dates" validate:"required,min=1,dive"`
}

type PeriodDateItem struct {
	Date datatypes.Date       `json:"date" validate:"required"`
	Type m.PeriodDateTypeEnum `json:"type" validate:"required,oneof=clase feriado inicio cierre recital otro"`
	Note *string              `json:"note" validate:"omitempty"`
}

/* =============== RESPONSES =============== */

type PeriodResponse struct {
	PeriodID        uuid.UUID `json:"period_id"`
	PeriodAcademyID uuid.UUID `json:"period_academy_id"`
	PeriodName      string    `json:"period_name"`
	PeriodYear      int16     `json:"period_year"`
	PeriodCreatedAt time.Time `json:"period_created_at"`
}

func FromModel(mo m.PeriodModel) PeriodResponse {
	return PeriodResponse{
		PeriodID:        mo.PeriodID,
		PeriodAcademyID: mo.PeriodAcademyID,
		PeriodName:      mo.PeriodName,
		PeriodYear:      mo.PeriodYear,
		PeriodCreatedAt: mo.PeriodCreatedAt,
	}
}

func FromModels(rows []m.PeriodModel) []PeriodResponse {
	out := make([]PeriodResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromModel(row))
	}
	return out
}
