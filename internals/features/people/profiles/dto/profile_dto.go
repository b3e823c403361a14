// internals/features/people/profiles/dto/profile_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "armonia_backend/internals/features/people/profiles/model"
)

/* =============== REQUESTS =============== */

type CreateProfileRequest struct {
	ProfileUserID    *uuid.UUID      `json:"profile_user_id" validate:"omitempty"`
	ProfileFullName  string          `json:"profile_full_name" validate:"required,min=3"`
	ProfileEmail     *string         `json:"profile_email" validate:"omitempty,email"`
	ProfilePhone     *string         `json:"profile_phone" validate:"omitempty"`
	ProfileBirthDate *datatypes.Date `json:"profile_birth_date" validate:"omitempty"`
}

// ToModel: el rol y el tenant los fija el controller, nunca el request.
func (r CreateProfileRequest) ToModel(academyID uuid.UUID, role m.ProfileRoleEnum) *m.ProfileModel {
	return &m.ProfileModel{
		ProfileUserID:    r.ProfileUserID,
		ProfileAcademyID: academyID,
		ProfileRole:      role,
		ProfileFullName:  r.ProfileFullName,
		ProfileEmail:     r.ProfileEmail,
		ProfilePhone:     r.ProfilePhone,
		ProfileBirthDate: r.ProfileBirthDate,
	}
}

// Update (partial)
type UpdateProfileRequest struct {
	ProfileUserID    *uuid.UUID      `json:"profile_user_id" validate:"omitempty"`
	ProfileFullName  *string         `json:"profile_full_name" validate:"omitempty,min=3"`
	ProfileEmail     *string         `json:"profile_email" validate:"omitempty,email"`
	ProfilePhone     *string         `json:"profile_phone" validate:"omitempty"`
	ProfileBirthDate *datatypes.Date `json:"profile_birth_date" validate:"omitempty"`
}

func (r UpdateProfileRequest) ApplyTo(mo *m.ProfileModel) {
	if r.ProfileUserID != nil {
		mo.ProfileUserID = r.ProfileUserID
	}
	if r.ProfileFullName != nil {
		mo.ProfileFullName = *r.ProfileFullName
	}
	if r.ProfileEmail != nil {
		mo.ProfileEmail = r.ProfileEmail
	}
	if r.ProfilePhone != nil {
		mo.ProfilePhone = r.ProfilePhone
	}
	if r.ProfileBirthDate != nil {
		mo.ProfileBirthDate = r.ProfileBirthDate
	}
}

type LinkGuardianStudentRequest struct {
	GuardianID uuid.UUID `json:"guardian_id" validate:"required"`
	StudentID  uuid.UUID `json:"student_id"  validate:"required"`
}

/* =============== RESPONSES =============== */

type ProfileResponse struct {
	ProfileID        uuid.UUID         `json:"profile_id"`
	ProfileUserID    *uuid.UUID        `json:"profile_user_id,omitempty"`
	ProfileAcademyID uuid.UUID         `json:"profile_academy_id"`
	ProfileRole      m.ProfileRoleEnum `json:"profile_role"`
	ProfileFullName  string            `json:"profile_full_name"`
	ProfileEmail     *string           `json:"profile_email,omitempty"`
	ProfilePhone     *string           `json:"profile_phone,omitempty"`
	ProfileBirthDate *datatypes.Date   `json:"profile_birth_date,omitempty"`
	ProfileHasPhoto  bool              `json:"profile_has_photo"`
	ProfileCreatedAt time.Time         `json:"profile_created_at"`
}

func FromModel(mo m.ProfileModel) ProfileResponse {
	return ProfileResponse{
		ProfileID:        mo.ProfileID,
		ProfileUserID:    mo.ProfileUserID,
		ProfileAcademyID: mo.ProfileAcademyID,
		ProfileRole:      mo.ProfileRole,
		ProfileFullName:  mo.ProfileFullName,
		ProfileEmail:     mo.ProfileEmail,
		ProfilePhone:     mo.ProfilePhone,
		ProfileBirthDate: mo.ProfileBirthDate,
		ProfileHasPhoto:  len(mo.ProfilePhoto) > 0,
		ProfileCreatedAt: mo.ProfileCreatedAt,
	}
}

func FromModels(rows []m.ProfileModel) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromModel(row))
	}
	return out
}
