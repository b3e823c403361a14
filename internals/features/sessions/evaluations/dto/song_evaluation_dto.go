package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"armonia_backend/internals/features/sessions/evaluations/model"
)

type CreateSongEvaluationRequest struct {
	SongEvaluationStudentID uuid.UUID `json:"song_evaluation_student_id" validate:"required"`
	SongEvaluationSongID    uuid.UUID `json:"song_evaluation_song_id" validate:"required"`
	SongEvaluationStatus    string    `json:"song_evaluation_status" validate:"omitempty,oneof=en_proceso aprobada"`
	SongEvaluationTags      []string  `json:"song_evaluation_tags" validate:"omitempty,max=20,dive,min=1,max=40"`
	SongEvaluationNotes     *string   `json:"song_evaluation_notes"`
}

func (r *CreateSongEvaluationRequest) ToModel(academyID uuid.UUID) *model.SongEvaluationModel {
	status := model.SongEvaluationEnProceso
	if r.SongEvaluationStatus != "" {
		status = model.SongEvaluationStatusEnum(r.SongEvaluationStatus)
	}
	return &model.SongEvaluationModel{
		SongEvaluationAcademyID: academyID,
		SongEvaluationStudentID: r.SongEvaluationStudentID,
		SongEvaluationSongID:    r.SongEvaluationSongID,
		SongEvaluationStatus:    status,
		SongEvaluationTags:      pq.StringArray(r.SongEvaluationTags),
		SongEvaluationNotes:     r.SongEvaluationNotes,
	}
}

type UpdateSongEvaluationRequest struct {
	SongEvaluationStatus *string   `json:"song_evaluation_status" validate:"omitempty,oneof=en_proceso aprobada"`
	SongEvaluationTags   *[]string `json:"song_evaluation_tags" validate:"omitempty,max=20,dive,min=1,max=40"`
	SongEvaluationNotes  *string   `json:"song_evaluation_notes"`
}

func (r *UpdateSongEvaluationRequest) ApplyTo(m *model.SongEvaluationModel) {
	if r.SongEvaluationStatus != nil {
		m.SongEvaluationStatus = model.SongEvaluationStatusEnum(*r.SongEvaluationStatus)
	}
	if r.SongEvaluationTags != nil {
		m.SongEvaluationTags = pq.StringArray(*r.SongEvaluationTags)
	}
	if r.SongEvaluationNotes != nil {
		m.SongEvaluationNotes = r.SongEvaluationNotes
	}
}
