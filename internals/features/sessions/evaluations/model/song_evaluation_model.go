package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type SongEvaluationStatusEnum string

const (
	SongEvaluationEnProceso SongEvaluationStatusEnum = "en_proceso"
	SongEvaluationAprobada  SongEvaluationStatusEnum = "aprobada"
)

// SongEvaluationModel: avance de un alumno sobre una canción del repertorio.
// Los tags son etiquetas libres del profesor ("ritmo", "memoria", etc.).
type SongEvaluationModel struct {
	SongEvaluationID uuid.UUID `gorm:"column:song_evaluation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"song_evaluation_id"`

	SongEvaluationAcademyID uuid.UUID `gorm:"column:song_evaluation_academy_id;type:uuid;not null;index" json:"song_evaluation_academy_id"`
	SongEvaluationStudentID uuid.UUID `gorm:"column:song_evaluation_student_id;type:uuid;not null;index:idx_song_evaluation_student_song" json:"song_evaluation_student_id"`
	SongEvaluationSongID    uuid.UUID `gorm:"column:song_evaluation_song_id;type:uuid;not null;index:idx_song_evaluation_student_song" json:"song_evaluation_song_id"`

	SongEvaluationStatus SongEvaluationStatusEnum `gorm:"column:song_evaluation_status;type:varchar(20);not null;default:'en_proceso'" json:"song_evaluation_status"`
	SongEvaluationTags   pq.StringArray           `gorm:"column:song_evaluation_tags;type:text[]" json:"song_evaluation_tags,omitempty"`
	SongEvaluationNotes  *string                  `gorm:"column:song_evaluation_notes;type:text" json:"song_evaluation_notes,omitempty"`

	SongEvaluationCreatedAt time.Time      `gorm:"column:song_evaluation_created_at;autoCreateTime" json:"song_evaluation_created_at"`
	SongEvaluationUpdatedAt *time.Time     `gorm:"column:song_evaluation_updated_at;autoUpdateTime" json:"song_evaluation_updated_at,omitempty"`
	SongEvaluationDeletedAt gorm.DeletedAt `gorm:"column:song_evaluation_deleted_at;index" json:"song_evaluation_deleted_at,omitempty"`
}

func (SongEvaluationModel) TableName() string { return "song_evaluations" }
