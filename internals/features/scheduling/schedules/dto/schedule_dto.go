package dto

import (
	"github.com/google/uuid"

	"armonia_backend/internals/features/scheduling/schedules/model"
)

/* ===================== REQUESTS ===================== */

type CreateScheduleRequest struct {
	ScheduleProfessorID uuid.UUID  `json:"schedule_professor_id" validate:"required"`
	ScheduleSubjectID   *uuid.UUID `json:"schedule_subject_id"`
	ScheduleDayOfWeek   int16      `json:"schedule_day_of_week" validate:"required,min=1,max=7"`
	ScheduleStartTime   string     `json:"schedule_start_time" validate:"required"`
	ScheduleEndTime     string     `json:"schedule_end_time" validate:"required"`
}

// El tenant lo fija el controller desde el token, nunca el request.
func (r *CreateScheduleRequest) ToModel(academyID uuid.UUID) *model.ScheduleModel {
	return &model.ScheduleModel{
		ScheduleAcademyID:   academyID,
		ScheduleProfessorID: r.ScheduleProfessorID,
		ScheduleSubjectID:   r.ScheduleSubjectID,
		ScheduleDayOfWeek:   r.ScheduleDayOfWeek,
		ScheduleStartTime:   r.ScheduleStartTime,
		ScheduleEndTime:     r.ScheduleEndTime,
	}
}

type UpdateScheduleRequest struct {
	ScheduleProfessorID *uuid.UUID `json:"schedule_professor_id"`
	ScheduleSubjectID   *uuid.UUID `json:"schedule_subject_id"`
	ScheduleDayOfWeek   *int16     `json:"schedule_day_of_week" validate:"omitempty,min=1,max=7"`
	ScheduleStartTime   *string    `json:"schedule_start_time"`
	ScheduleEndTime     *string    `json:"schedule_end_time"`
}

func (r *UpdateScheduleRequest) ApplyTo(m *model.ScheduleModel) {
	if r.ScheduleProfessorID != nil {
		m.ScheduleProfessorID = *r.ScheduleProfessorID
	}
	if r.ScheduleSubjectID != nil {
		m.ScheduleSubjectID = r.ScheduleSubjectID
	}
	if r.ScheduleDayOfWeek != nil {
		m.ScheduleDayOfWeek = *r.ScheduleDayOfWeek
	}
	if r.ScheduleStartTime != nil {
		m.ScheduleStartTime = *r.ScheduleStartTime
	}
	if r.ScheduleEndTime != nil {
		m.ScheduleEndTime = *r.ScheduleEndTime
	}
}
