package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"armonia_backend/internals/features/sessions/class_sessions/model"
)

type CreateClassSessionRequest struct {
	ClassSessionRegistrationID uuid.UUID      `json:"class_session_registration_id" validate:"required"`
	ClassSessionDate           datatypes.Date `json:"class_session_date" validate:"required"`
	ClassSessionAttendance     string         `json:"class_session_attendance" validate:"required,oneof=presente ausente tarde justificado"`
	ClassSessionAssignment     *string        `json:"class_session_assignment"`
	ClassSessionNotes          *string        `json:"class_session_notes"`
}

func (r *CreateClassSessionRequest) ToModel(academyID uuid.UUID) *model.ClassSessionModel {
	return &model.ClassSessionModel{
		ClassSessionAcademyID:      academyID,
		ClassSessionRegistrationID: r.ClassSessionRegistrationID,
		ClassSessionDate:           r.ClassSessionDate,
		ClassSessionAttendance:     model.AttendanceStatusEnum(r.ClassSessionAttendance),
		ClassSessionAssignment:     r.ClassSessionAssignment,
		ClassSessionNotes:          r.ClassSessionNotes,
	}
}

type UpdateClassSessionRequest struct {
	ClassSessionAttendance *string `json:"class_session_attendance" validate:"omitempty,oneof=presente ausente tarde justificado"`
	ClassSessionAssignment *string `json:"class_session_assignment"`
	ClassSessionNotes      *string `json:"class_session_notes"`
}

func (r *UpdateClassSessionRequest) ApplyTo(m *model.ClassSessionModel) {
	if r.ClassSessionAttendance != nil {
		m.ClassSessionAttendance = model.AttendanceStatusEnum(*r.ClassSessionAttendance)
	}
	if r.ClassSessionAssignment != nil {
		m.ClassSessionAssignment = r.ClassSessionAssignment
	}
	if r.ClassSessionNotes != nil {
		m.ClassSessionNotes = r.ClassSessionNotes
	}
}
