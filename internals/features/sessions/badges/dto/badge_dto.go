package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"armonia_backend/internals/features/sessions/badges/model"
)

type CreateBadgeRequest struct {
	BadgeName        string   `json:"badge_name" validate:"required,min=2,max=100"`
	BadgeDescription *string  `json:"badge_description"`
	BadgeTags        []string `json:"badge_tags" validate:"omitempty,max=20,dive,min=1,max=40"`
}

func (r *CreateBadgeRequest) ToModel(academyID uuid.UUID) *model.BadgeModel {
	return &model.BadgeModel{
		BadgeAcademyID:   academyID,
		BadgeName:        r.BadgeName,
		BadgeDescription: r.BadgeDescription,
		BadgeTags:        pq.StringArray(r.BadgeTags),
	}
}

type UpdateBadgeRequest struct {
	BadgeName        *string   `json:"badge_name" validate:"omitempty,min=2,max=100"`
	BadgeDescription *string   `json:"badge_description"`
	BadgeTags        *[]string `json:"badge_tags" validate:"omitempty,max=20,dive,min=1,max=40"`
}

func (r *UpdateBadgeRequest) ApplyTo(m *model.BadgeModel) {
	if r.BadgeName != nil {
		m.BadgeName = *r.BadgeName
	}
	if r.BadgeDescription != nil {
		m.BadgeDescription = r.BadgeDescription
	}
	if r.BadgeTags != nil {
		m.BadgeTags = pq.StringArray(*r.BadgeTags)
	}
}

type AwardBadgeRequest struct {
	StudentBadgeStudentID uuid.UUID `json:"student_badge_student_id" validate:"required"`
	StudentBadgeBadgeID   uuid.UUID `json:"student_badge_badge_id" validate:"required"`
}
