package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SongModel struct {
	SongID uuid.UUID `gorm:"column:song_id;type:uuid;default:gen_random_uuid();primaryKey" json:"song_id"`

	SongAcademyID uuid.UUID `gorm:"column:song_academy_id;type:uuid;not null;index" json:"song_academy_id"`

	SongTitle    string  `gorm:"column:song_title;type:text;not null" json:"song_title"`
	SongComposer *string `gorm:"column:song_composer;type:text" json:"song_composer,omitempty"`
	// nivel sugerido 1..10
	SongLevel *int16 `gorm:"column:song_level;type:smallint" json:"song_level,omitempty"`

	SongCreatedAt time.Time      `gorm:"column:song_created_at;autoCreateTime" json:"song_created_at"`
	SongUpdatedAt *time.Time     `gorm:"column:song_updated_at;autoUpdateTime" json:"song_updated_at,omitempty"`
	SongDeletedAt gorm.DeletedAt `gorm:"column:song_deleted_at;index" json:"song_deleted_at,omitempty"`
}

func (SongModel) TableName() string { return "songs" }
