package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContractModel: acuerdo de cobro de un acudiente que agrupa una o más
// matrículas. Al crearlo se sintetiza una factura por mes calendario entre la
// primera y la última fecha de clase de los periodos involucrados.
type ContractModel struct {
	ContractID uuid.UUID `gorm:"column:contract_id;type:uuid;default:gen_random_uuid();primaryKey" json:"contract_id"`

	ContractAcademyID  uuid.UUID `gorm:"column:contract_academy_id;type:uuid;not null;index" json:"contract_academy_id"`
	ContractGuardianID uuid.UUID `gorm:"column:contract_guardian_id;type:uuid;not null;index" json:"contract_guardian_id"`

	ContractMonthlyAmount float64 `gorm:"column:contract_monthly_amount;type:numeric(12,2);not null" json:"contract_monthly_amount"`

	ContractStartDate time.Time `gorm:"column:contract_start_date;type:date;not null" json:"contract_start_date"`
	ContractEndDate   time.Time `gorm:"column:contract_end_date;type:date;not null" json:"contract_end_date"`

	ContractCreatedAt time.Time      `gorm:"column:contract_created_at;autoCreateTime" json:"contract_created_at"`
	ContractUpdatedAt *time.Time     `gorm:"column:contract_updated_at;autoUpdateTime" json:"contract_updated_at,omitempty"`
	ContractDeletedAt gorm.DeletedAt `gorm:"column:contract_deleted_at;index" json:"contract_deleted_at,omitempty"`
}

func (ContractModel) TableName() string { return "contracts" }

// ContractCourseModel: fila de unión contrato ↔ matrícula.
type ContractCourseModel struct {
	ContractCourseID uuid.UUID `gorm:"column:contract_course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"contract_course_id"`

	ContractCourseContractID     uuid.UUID `gorm:"column:contract_course_contract_id;type:uuid;not null;index" json:"contract_course_contract_id"`
	ContractCourseRegistrationID uuid.UUID `gorm:"column:contract_course_registration_id;type:uuid;not null;index" json:"contract_course_registration_id"`

	ContractCourseCreatedAt time.Time `gorm:"column:contract_course_created_at;autoCreateTime" json:"contract_course_created_at"`
}

func (ContractCourseModel) TableName() string { return "contract_courses" }
