package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileRoleEnum string

const (
	ProfileRoleDirector  ProfileRoleEnum = "director"
	ProfileRoleProfessor ProfileRoleEnum = "professor"
	ProfileRoleGuardian  ProfileRoleEnum = "guardian"
	ProfileRoleStudent   ProfileRoleEnum = "student"
)

// ProfileModel: una sola tabla profiles discriminada por rol,
// siempre con scope de academia (tenant).
type ProfileModel struct {
	ProfileID uuid.UUID `gorm:"column:profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"profile_id"`

	// FK: cuenta de login (nullable — los alumnos pueden no tener cuenta)
	ProfileUserID    *uuid.UUID `gorm:"column:profile_user_id;type:uuid" json:"profile_user_id,omitempty"`
	ProfileAcademyID uuid.UUID  `gorm:"column:profile_academy_id;type:uuid;not null;index" json:"profile_academy_id"`

	ProfileRole ProfileRoleEnum `gorm:"column:profile_role;type:profile_role_enum;not null" json:"profile_role"`

	ProfileFullName  string          `gorm:"column:profile_full_name;type:text;not null" json:"profile_full_name"`
	ProfileEmail     *string         `gorm:"column:profile_email;type:text" json:"profile_email,omitempty"`
	ProfilePhone     *string         `gorm:"column:profile_phone;type:text" json:"profile_phone,omitempty"`
	ProfileBirthDate *datatypes.Date `gorm:"column:profile_birth_date;type:date" json:"profile_birth_date,omitempty"`

	// foto webp (resize + re-encode en el upload)
	ProfilePhoto []byte `gorm:"column:profile_photo;type:bytea" json:"-"`

	ProfileCreatedAt time.Time      `gorm:"column:profile_created_at;autoCreateTime" json:"profile_created_at"`
	ProfileUpdatedAt *time.Time     `gorm:"column:profile_updated_at;autoUpdateTime" json:"profile_updated_at,omitempty"`
	ProfileDeletedAt gorm.DeletedAt `gorm:"column:profile_deleted_at;index" json:"profile_deleted_at,omitempty"`
}

func (ProfileModel) TableName() string { return "profiles" }
