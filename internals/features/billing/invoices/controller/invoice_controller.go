package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "armonia_backend/internals/features/billing/invoices/dto"
	model "armonia_backend/internals/features/billing/invoices/model"
	helper "armonia_backend/internals/helpers"
)

type InvoiceController struct {
	DB *gorm.DB
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db}
}

/* ===================== READ ===================== */

// GET /a/invoices?guardian_id=&status=&month=
func (h *InvoiceController) List(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 25, 100)

	base := h.DB.Model(&model.InvoiceModel{}).
		Where("invoice_academy_id = ?", academyID)

	if raw := c.Query("guardian_id"); raw != "" {
		base = base.Where("invoice_guardian_id = ?", raw)
	}
	if raw := c.Query("status"); raw != "" {
		base = base.Where("invoice_status = ?", raw)
	}
	if raw := c.Query("month"); raw != "" { // YYYY-MM
		m, err := time.Parse("2006-01", raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "month inválido (se espera YYYY-MM)")
		}
		base = base.Where("invoice_month = ?", m)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.InvoiceModel
	if err := base.
		Order("invoice_month ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list, time.Now()),
		helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

// GET /u/my-invoices — el acudiente ve solo lo suyo
func (h *InvoiceController) ListMine(c *fiber.Ctx) error {
	profileID, err := helper.GetProfileIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 25, 100)

	base := h.DB.Model(&model.InvoiceModel{}).
		Where("invoice_guardian_id = ?", profileID)
	if raw := c.Query("status"); raw != "" {
		base = base.Where("invoice_status = ?", raw)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.InvoiceModel
	if err := base.
		Order("invoice_month ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list, time.Now()),
		helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

/* ===================== MARK PAID ===================== */

// PATCH /a/invoices/:id/pay
// Transición de un solo sentido: una factura pagada se queda pagada y
// paid_at no se sobreescribe en llamadas repetidas.
func (h *InvoiceController) MarkPaid(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var invoice model.InvoiceModel
	if err := h.DB.
		Where("invoice_id = ? AND invoice_academy_id = ?", c.Params("id"), academyID).
		First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Factura no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if invoice.InvoiceStatus == model.InvoiceStatusPagado {
		return helper.JsonOK(c, "La factura ya estaba pagada", dto.FromModel(invoice, time.Now()))
	}

	now := time.Now()
	invoice.InvoiceStatus = model.InvoiceStatusPagado
	invoice.InvoicePaidAt = &now
	if err := h.DB.Save(&invoice).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la factura")
	}

	return helper.JsonUpdated(c, "Factura marcada como pagada", dto.FromModel(invoice, now))
}
