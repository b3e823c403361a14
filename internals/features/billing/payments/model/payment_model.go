package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentModel: intento de pago online (Midtrans Snap) de una factura.
type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentAcademyID uuid.UUID `gorm:"column:payment_academy_id;type:uuid;not null;index" json:"payment_academy_id"`
	PaymentInvoiceID uuid.UUID `gorm:"column:payment_invoice_id;type:uuid;not null;index" json:"payment_invoice_id"`

	PaymentOrderID   string  `gorm:"column:payment_order_id;type:varchar(64);uniqueIndex;not null" json:"payment_order_id"`
	PaymentAmount    float64 `gorm:"column:payment_amount;type:numeric(12,2);not null" json:"payment_amount"`
	PaymentStatus    string  `gorm:"column:payment_status;type:varchar(20);not null;default:'pending'" json:"payment_status"`
	PaymentSnapToken string  `gorm:"column:payment_snap_token;type:varchar(128)" json:"payment_snap_token,omitempty"`

	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt *time.Time     `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at,omitempty"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"payment_deleted_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }
