package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	SubjectID uuid.UUID `gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_id"`

	SubjectAcademyID uuid.UUID `gorm:"column:subject_academy_id;type:uuid;not null;index" json:"subject_academy_id"`

	SubjectName        string  `gorm:"column:subject_name;type:text;not null" json:"subject_name"`
	SubjectDescription *string `gorm:"column:subject_description;type:text" json:"subject_description,omitempty"`

	SubjectCreatedAt time.Time      `gorm:"column:subject_created_at;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt *time.Time     `gorm:"column:subject_updated_at;autoUpdateTime" json:"subject_updated_at,omitempty"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
