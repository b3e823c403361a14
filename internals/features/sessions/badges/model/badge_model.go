package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// BadgeModel: insignia definida por la academia.
type BadgeModel struct {
	BadgeID uuid.UUID `gorm:"column:badge_id;type:uuid;default:gen_random_uuid();primaryKey" json:"badge_id"`

	BadgeAcademyID uuid.UUID `gorm:"column:badge_academy_id;type:uuid;not null;index" json:"badge_academy_id"`

	BadgeName        string         `gorm:"column:badge_name;type:varchar(100);not null" json:"badge_name"`
	BadgeDescription *string        `gorm:"column:badge_description;type:text" json:"badge_description,omitempty"`
	BadgeTags        pq.StringArray `gorm:"column:badge_tags;type:text[]" json:"badge_tags,omitempty"`

	BadgeCreatedAt time.Time      `gorm:"column:badge_created_at;autoCreateTime" json:"badge_created_at"`
	BadgeUpdatedAt *time.Time     `gorm:"column:badge_updated_at;autoUpdateTime" json:"badge_updated_at,omitempty"`
	BadgeDeletedAt gorm.DeletedAt `gorm:"column:badge_deleted_at;index" json:"badge_deleted_at,omitempty"`
}

func (BadgeModel) TableName() string { return "badges" }

// StudentBadgeModel: otorgamiento de una insignia a un alumno.
type StudentBadgeModel struct {
	StudentBadgeID uuid.UUID `gorm:"column:student_badge_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_badge_id"`

	StudentBadgeAcademyID uuid.UUID `gorm:"column:student_badge_academy_id;type:uuid;not null;index" json:"student_badge_academy_id"`
	StudentBadgeStudentID uuid.UUID `gorm:"column:student_badge_student_id;type:uuid;not null;index" json:"student_badge_student_id"`
	StudentBadgeBadgeID   uuid.UUID `gorm:"column:student_badge_badge_id;type:uuid;not null;index" json:"student_badge_badge_id"`

	StudentBadgeAwardedAt time.Time      `gorm:"column:student_badge_awarded_at;autoCreateTime" json:"student_badge_awarded_at"`
	StudentBadgeDeletedAt gorm.DeletedAt `gorm:"column:student_badge_deleted_at;index" json:"student_badge_deleted_at,omitempty"`
}

func (StudentBadgeModel) TableName() string { return "student_badges" }
