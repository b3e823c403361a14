package dto

import (
	"time"

	"github.com/google/uuid"

	m "armonia_backend/internals/features/academics/songs/model"
)

type CreateSongRequest struct {
	SongTitle    string  `json:"song_title" validate:"required,min=1"`
	SongComposer *string `json:"song_composer" validate:"omitempty"`
	SongLevel    *int16  `json:"song_level" validate:"omitempty,min=1,max=10"`
}

func (r CreateSongRequest) ToModel(academyID uuid.UUID) *m.SongModel {
	return &m.SongModel{
		SongAcademyID: academyID,
		SongTitle:     r.SongTitle,
		SongComposer:  r.SongComposer,
		SongLevel:     r.SongLevel,
	}
}

type UpdateSongRequest struct {
	SongTitle    *string `json:"song_title" validate:"omitempty,min=1"`
	SongComposer *string `json:"song_composer" validate:"omitempty"`
	SongLevel    *int16  `json:"song_level" validate:"omitempty,min=1,max=10"`
}

func (r UpdateSongRequest) ApplyTo(mo *m.SongModel) {
	if r.SongTitle != nil {
		mo.SongTitle = *r.SongTitle
	}
	if r.SongComposer != nil {
		mo.SongComposer = r.SongComposer
	}
	if r.SongLevel != nil {
		mo.SongLevel = r.SongLevel
	}
}

type SongResponse struct {
	SongID        uuid.UUID `json:"song_id"`
	SongAcademyID uuid.UUID `json:"song_academy_id"`
	SongTitle     string    `json:"song_title"`
	SongComposer  *string   `json:"song_composer,omitempty"`
	SongLevel     *int16    `json:"song_level,omitempty"`
	SongCreatedAt time.Time `json:"song_created_at"`
}

func FromModel(mo m.SongModel) SongResponse {
	return SongResponse{
		SongID:        mo.SongID,
		SongAcademyID: mo.SongAcademyID,
		SongTitle:     mo.SongTitle,
		SongComposer:  mo.SongComposer,
		SongLevel:     mo.SongLevel,
		SongCreatedAt: mo.SongCreatedAt,
	}
}

func FromModels(rows []m.SongModel) []SongResponse {
	out := make([]SongResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromModel(row))
	}
	return out
}
