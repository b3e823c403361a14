package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	crModel "armonia_backend/internals/features/academics/course_registrations/model"
	dto "armonia_backend/internals/features/billing/contracts/dto"
	model "armonia_backend/internals/features/billing/contracts/model"
	"armonia_backend/internals/features/billing/contracts/service"
	invoiceModel "armonia_backend/internals/features/billing/invoices/model"
	profileModel "armonia_backend/internals/features/people/profiles/model"
	helper "armonia_backend/internals/helpers"
)

type ContractController struct {
	DB *gorm.DB
}

func NewContractController(db *gorm.DB) *ContractController {
	return &ContractController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */

// POST /a/contracts
// El monto se valida antes de cualquier escritura; un fallo a mitad de camino
// deshace las etapas anteriores (ver service.CreateContract).
func (h *ContractController) Create(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateContractRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	if (req.ContractMonthlyAmount == nil) == (req.ContractPerCourseAmount == nil) {
		return fiber.NewError(fiber.StatusBadRequest,
			"Debe indicar exactamente uno: contract_monthly_amount o contract_per_course_amount")
	}

	// acudiente
	var count int64
	if err := h.DB.Model(&profileModel.ProfileModel{}).
		Where("profile_id = ? AND profile_academy_id = ? AND profile_role = ?",
			req.ContractGuardianID, academyID, profileModel.ProfileRoleGuardian).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Acudiente no encontrado en esta academia")
	}

	// matrículas del contrato
	var regs []crModel.CourseRegistrationModel
	if err := h.DB.
		Where("course_registration_id IN ? AND course_registration_academy_id = ?",
			req.CourseRegistrationIDs, academyID).
		Find(&regs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if len(regs) != len(req.CourseRegistrationIDs) {
		return fiber.NewError(fiber.StatusNotFound, "Una o más matrículas no existen en esta academia")
	}

	// todas las matrículas deben ser de alumnos vinculados al acudiente
	for _, r := range regs {
		var linked int64
		if err := h.DB.Table("guardian_students").
			Where("guardian_student_guardian_id = ? AND guardian_student_student_id = ? AND guardian_student_deleted_at IS NULL",
				req.ContractGuardianID, r.CourseRegistrationStudentID).
			Count(&linked).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if linked == 0 {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("La matrícula %s no pertenece a un alumno vinculado al acudiente", r.CourseRegistrationID))
		}
	}

	var monthlyAmount float64
	if req.ContractMonthlyAmount != nil {
		monthlyAmount = *req.ContractMonthlyAmount
	} else {
		monthlyAmount = float64(len(regs)) * (*req.ContractPerCourseAmount)
	}
	if monthlyAmount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "El monto mensual debe ser mayor que cero")
	}

	result, err := service.CreateContract(h.DB, service.CreateContractInput{
		AcademyID:     academyID,
		GuardianID:    req.ContractGuardianID,
		Registrations: regs,
		MonthlyAmount: monthlyAmount,
	})
	if err != nil {
		if errors.Is(err, service.ErrNoClassDates) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Contrato creado y facturas generadas", result)
}

/* ===================== READ ===================== */

// GET /a/contracts?guardian_id=
func (h *ContractController) List(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 25, 100)

	base := h.DB.Model(&model.ContractModel{}).
		Where("contract_academy_id = ?", academyID)
	if raw := c.Query("guardian_id"); raw != "" {
		base = base.Where("contract_guardian_id = ?", raw)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.ContractModel
	if err := base.
		Order("contract_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", list,
		helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

// GET /a/contracts/:id — incluye matrículas vinculadas y facturas
func (h *ContractController) GetByID(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var contract model.ContractModel
	if err := h.DB.
		Where("contract_id = ? AND contract_academy_id = ?", c.Params("id"), academyID).
		First(&contract).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Contrato no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var courses []model.ContractCourseModel
	if err := h.DB.
		Where("contract_course_contract_id = ?", contract.ContractID).
		Find(&courses).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var invoices []invoiceModel.InvoiceModel
	if err := h.DB.
		Where("invoice_contract_id = ?", contract.ContractID).
		Order("invoice_month ASC").
		Find(&invoices).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"contract": contract,
		"courses":  courses,
		"invoices": invoices,
	})
}

/* ===================== DELETE ===================== */

// DELETE /a/contracts/:id — baja lógica del contrato y de sus facturas pendientes
func (h *ContractController) Delete(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("contract_id = ? AND contract_academy_id = ?", c.Params("id"), academyID).
		Delete(&model.ContractModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Contrato no encontrado")
	}

	if err := h.DB.
		Where("invoice_contract_id = ? AND invoice_status = ?", c.Params("id"), invoiceModel.InvoiceStatusPendiente).
		Delete(&invoiceModel.InvoiceModel{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Contrato eliminado", fiber.Map{"id": c.Params("id")})
}
