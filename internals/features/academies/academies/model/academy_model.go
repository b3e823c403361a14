package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcademyModel: el tenant. Todo lo demás se scopea por academy_id.
type AcademyModel struct {
	AcademyID uuid.UUID `gorm:"column:academy_id;type:uuid;default:gen_random_uuid();primaryKey" json:"academy_id"`

	AcademyName    string  `gorm:"column:academy_name;type:text;not null" json:"academy_name"`
	AcademySlug    string  `gorm:"column:academy_slug;type:text;not null;unique" json:"academy_slug"`
	AcademyAddress *string `gorm:"column:academy_address;type:text" json:"academy_address,omitempty"`
	AcademyPhone   *string `gorm:"column:academy_phone;type:text" json:"academy_phone,omitempty"`

	AcademyIsActive bool `gorm:"column:academy_is_active;not null;default:true" json:"academy_is_active"`

	AcademyCreatedAt time.Time      `gorm:"column:academy_created_at;autoCreateTime" json:"academy_created_at"`
	AcademyUpdatedAt *time.Time     `gorm:"column:academy_updated_at;autoUpdateTime" json:"academy_updated_at,omitempty"`
	AcademyDeletedAt gorm.DeletedAt `gorm:"column:academy_deleted_at;index" json:"academy_deleted_at,omitempty"`
}

func (AcademyModel) TableName() string { return "academies" }
