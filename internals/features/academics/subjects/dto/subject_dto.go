package dto

import (
	"time"

	"github.com/google/uuid"

	m "armonia_backend/internals/features/academics/subjects/model"
)

type CreateSubjectRequest struct {
	SubjectName        string  `json:"subject_name" validate:"required,min=2"`
	SubjectDescription *string `json:"subject_description" validate:"omitempty"`
}

func (r CreateSubjectRequest) ToModel(academyID uuid.UUID) *m.SubjectModel {
	return &m.SubjectModel{
		SubjectAcademyID:   academyID,
		SubjectName:        r.SubjectName,
		SubjectDescription: r.SubjectDescription,
	}
}

type UpdateSubjectRequest struct {
	SubjectName        *string `json:"subject_name" validate:"omitempty,min=2"`
	SubjectDescription *string `json:"subject_description" validate:"omitempty"`
}

func (r UpdateSubjectRequest) ApplyTo(mo *m.SubjectModel) {
	if r.SubjectName != nil {
		mo.SubjectName = *r.SubjectName
	}
	if r.SubjectDescription != nil {
		mo.SubjectDescription = r.SubjectDescription
	}
}

type SubjectResponse struct {
	SubjectID          uuid.UUID `json:"subject_id"`
	SubjectAcademyID   uuid.UUID `json:"subject_academy_id"`
	SubjectName        string    `json:"subject_name"`
	SubjectDescription *string   `json:"subject_description,omitempty"`
	SubjectCreatedAt   time.Time `json:"subject_created_at"`
}

func FromModel(mo m.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:          mo.SubjectID,
		SubjectAcademyID:   mo.SubjectAcademyID,
		SubjectName:        mo.SubjectName,
		SubjectDescription: mo.SubjectDescription,
		SubjectCreatedAt:   mo.SubjectCreatedAt,
	}
}

func FromModels(rows []m.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromModel(row))
	}
	return out
}
