package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceStatusEnum string

const (
	InvoiceStatusPendiente InvoiceStatusEnum = "pendiente"
	InvoiceStatusPagado    InvoiceStatusEnum = "pagado"
)

// InvoiceModel: línea de cobro de un mes bajo un contrato. El estado
// "atrasado" no se persiste nunca, se deriva al leer.
type InvoiceModel struct {
	InvoiceID uuid.UUID `gorm:"column:invoice_id;type:uuid;default:gen_random_uuid();primaryKey" json:"invoice_id"`

	InvoiceAcademyID  uuid.UUID `gorm:"column:invoice_academy_id;type:uuid;not null;index" json:"invoice_academy_id"`
	InvoiceContractID uuid.UUID `gorm:"column:invoice_contract_id;type:uuid;not null;index" json:"invoice_contract_id"`
	InvoiceGuardianID uuid.UUID `gorm:"column:invoice_guardian_id;type:uuid;not null;index" json:"invoice_guardian_id"`

	// siempre el día 1 del mes facturado
	InvoiceMonth  time.Time         `gorm:"column:invoice_month;type:date;not null" json:"invoice_month"`
	InvoiceAmount float64           `gorm:"column:invoice_amount;type:numeric(12,2);not null" json:"invoice_amount"`
	InvoiceStatus InvoiceStatusEnum `gorm:"column:invoice_status;type:varchar(20);not null;default:'pendiente'" json:"invoice_status"`
	InvoicePaidAt *time.Time        `gorm:"column:invoice_paid_at" json:"invoice_paid_at,omitempty"`

	InvoiceCreatedAt time.Time      `gorm:"column:invoice_created_at;autoCreateTime" json:"invoice_created_at"`
	InvoiceUpdatedAt *time.Time     `gorm:"column:invoice_updated_at;autoUpdateTime" json:"invoice_updated_at,omitempty"`
	InvoiceDeletedAt gorm.DeletedAt `gorm:"column:invoice_deleted_at;index" json:"invoice_deleted_at,omitempty"`
}

func (InvoiceModel) TableName() string { return "invoices" }
