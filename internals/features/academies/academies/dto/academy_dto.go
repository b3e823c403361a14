// internals/features/academies/academies/dto/academy_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "armonia_backend/internals/features/academies/academies/model"
)

/* =============== REQUESTS =============== */

type CreateAcademyRequest struct {
	AcademyName    string  `json:"academy_name" validate:"required,min=3"`
	AcademySlug    string  `json:"academy_slug" validate:"required,min=3,lowercase"`
	AcademyAddress *string `json:"academy_address" validate:"omitempty"`
	AcademyPhone   *string `json:"academy_phone"   validate:"omitempty"`
}

func (r CreateAcademyRequest) ToModel() *m.AcademyModel {
	return &m.AcademyModel{
		AcademyName:    r.AcademyName,
		AcademySlug:    r.AcademySlug,
		AcademyAddress: r.AcademyAddress,
		AcademyPhone:   r.AcademyPhone,
	}
}

// Update (partial)
type UpdateAcademyRequest struct {
	AcademyName     *string `json:"academy_name" validate:"omitempty,min=3"`
	AcademySlug     *string `json:"academy_slug" validate:"omitempty,min=3,lowercase"`
	AcademyAddress  *string `json:"academy_address" validate:"omitempty"`
	AcademyPhone    *string `json:"academy_phone"   validate:"omitempty"`
	AcademyIsActive *bool   `json:"academy_is_active" validate:"omitempty"`
}

func (r UpdateAcademyRequest) ApplyTo(mo *m.AcademyModel) {
	if r.AcademyName != nil {
		mo.AcademyName = *r.AcademyName
	}
	if r.AcademySlug != nil {
		mo.AcademySlug = *r.AcademySlug
	}
	if r.AcademyAddress != nil {
		mo.AcademyAddress = r.AcademyAddress
	}
	if r.AcademyPhone != nil {
		mo.AcademyPhone = r.AcademyPhone
	}
	if r.AcademyIsActive != nil {
		mo.AcademyIsActive = *r.AcademyIsActive
	}
}

/* =============== RESPONSES =============== */

type AcademyResponse struct {
	AcademyID       uuid.UUID  `json:"academy_id"`
	AcademyName     string     `json:"academy_name"`
	AcademySlug     string     `json:"academy_slug"`
	AcademyAddress  *string    `json:"academy_address,omitempty"`
	AcademyPhone    *string    `json:"academy_phone,omitempty"`
	AcademyIsActive bool       `json:"academy_is_active"`
	AcademyCreatedAt time.Time `json:"academy_created_at"`
}

func FromModel(mo m.AcademyModel) AcademyResponse {
	return AcademyResponse{
		AcademyID:        mo.AcademyID,
		AcademyName:      mo.AcademyName,
		AcademySlug:      mo.AcademySlug,
		AcademyAddress:   mo.AcademyAddress,
		AcademyPhone:     mo.AcademyPhone,
		AcademyIsActive:  mo.AcademyIsActive,
		AcademyCreatedAt: mo.AcademyCreatedAt,
	}
}

func FromModels(rows []m.AcademyModel) []AcademyResponse {
	out := make([]AcademyResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromModel(row))
	}
	return out
}
