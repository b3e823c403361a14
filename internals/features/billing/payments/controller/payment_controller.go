package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	invoiceModel "armonia_backend/internals/features/billing/invoices/model"
	model "armonia_backend/internals/features/billing/payments/model"
	"armonia_backend/internals/features/billing/payments/service"
	profileModel "armonia_backend/internals/features/people/profiles/model"
	helper "armonia_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

/* ===================== CREATE (snap token) ===================== */

// POST /u/invoices/:id/pay — el acudiente inicia el pago online de su factura
func (h *PaymentController) CreatePayment(c *fiber.Ctx) error {
	profileID, err := helper.GetProfileIDFromToken(c)
	if err != nil {
		return err
	}

	var invoice invoiceModel.InvoiceModel
	if err := h.DB.
		Where("invoice_id = ? AND invoice_guardian_id = ?", c.Params("id"), profileID).
		First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Factura no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if invoice.InvoiceStatus == invoiceModel.InvoiceStatusPagado {
		return fiber.NewError(fiber.StatusConflict, "La factura ya está pagada")
	}

	var guardian profileModel.ProfileModel
	if err := h.DB.
		Where("profile_id = ?", profileID).
		First(&guardian).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	orderID := fmt.Sprintf("FACT-%d", time.Now().UnixNano())
	payment := model.PaymentModel{
		PaymentAcademyID: invoice.InvoiceAcademyID,
		PaymentInvoiceID: invoice.InvoiceID,
		PaymentOrderID:   orderID,
		PaymentAmount:    invoice.InvoiceAmount,
		PaymentStatus:    "pending",
	}
	if err := h.DB.Create(&payment).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar el pago")
	}

	email := ""
	if guardian.ProfileEmail != nil {
		email = *guardian.ProfileEmail
	}
	token, err := service.GenerateSnapToken(orderID, invoice, guardian.ProfileFullName, email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el token de pago")
	}

	payment.PaymentSnapToken = token
	if err := h.DB.Save(&payment).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo guardar el token de pago")
	}

	return helper.JsonCreated(c, "Pago iniciado, continúe en la pasarela", fiber.Map{
		"order_id":   orderID,
		"snap_token": token,
	})
}

/* ===================== WEBHOOK ===================== */

// POST /api/payments/notification — llamado por Midtrans, sin auth
func (h *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Webhook inválido")
	}

	orderID, _ := body["order_id"].(string)
	transactionStatus, _ := body["transaction_status"].(string)
	if orderID == "" || transactionStatus == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Webhook inválido")
	}

	statusCode, _ := body["status_code"].(string)
	grossAmount, _ := body["gross_amount"].(string)
	signatureKey, _ := body["signature_key"].(string)
	if !service.VerifyNotification(orderID, statusCode, grossAmount, signatureKey) {
		log.Printf("⚠️ webhook %s: firma inválida", orderID)
		return fiber.NewError(fiber.StatusUnauthorized, "Firma inválida")
	}

	var payment model.PaymentModel
	if err := h.DB.
		Where("payment_order_id = ?", orderID).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pago no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	switch transactionStatus {
	case "settlement", "capture", "success":
		payment.PaymentStatus = "completed"
	case "deny", "cancel", "expire", "failure":
		payment.PaymentStatus = "failed"
	default:
		payment.PaymentStatus = "pending"
	}
	if err := h.DB.Save(&payment).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if payment.PaymentStatus == "completed" {
		if err := h.settleInvoice(payment.PaymentInvoiceID); err != nil {
			log.Printf("⚠️ webhook %s: %v", orderID, err)
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.SendStatus(fiber.StatusOK)
}

// settleInvoice marca la factura como pagada sin pisar paid_at si ya lo estaba.
func (h *PaymentController) settleInvoice(invoiceID uuid.UUID) error {
	var invoice invoiceModel.InvoiceModel
	if err := h.DB.
		Where("invoice_id = ?", invoiceID).
		First(&invoice).Error; err != nil {
		return err
	}
	if invoice.InvoiceStatus == invoiceModel.InvoiceStatusPagado {
		return nil
	}

	now := time.Now()
	invoice.InvoiceStatus = invoiceModel.InvoiceStatusPagado
	invoice.InvoicePaidAt = &now
	return h.DB.Save(&invoice).Error
}
