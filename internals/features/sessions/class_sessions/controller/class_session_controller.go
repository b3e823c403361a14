package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	crModel "armonia_backend/internals/features/academics/course_registrations/model"
	periodModel "armonia_backend/internals/features/academics/periods/model"
	dto "armonia_backend/internals/features/sessions/class_sessions/dto"
	model "armonia_backend/internals/features/sessions/class_sessions/model"
	helper "armonia_backend/internals/helpers"
)

type ClassSessionController struct {
	DB *gorm.DB
}

func NewClassSessionController(db *gorm.DB) *ClassSessionController {
	return &ClassSessionController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */

// POST /a/class-sessions
// La fecha debe pertenecer al calendario de clases del periodo de la matrícula.
func (h *ClassSessionController) Create(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateClassSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	var reg crModel.CourseRegistrationModel
	if err := h.DB.
		Where("course_registration_id = ? AND course_registration_academy_id = ?",
			req.ClassSessionRegistrationID, academyID).
		First(&reg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Matrícula no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var isClassDate int64
	if err := h.DB.Model(&periodModel.PeriodDateModel{}).
		Where("period_date_period_id = ? AND period_date_date = ? AND period_date_type = ?",
			reg.CourseRegistrationPeriodID, time.Time(req.ClassSessionDate), periodModel.PeriodDateClase).
		Count(&isClassDate).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if isClassDate == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "La fecha no es un día de clase del periodo")
	}

	var exists int64
	if err := h.DB.Model(&model.ClassSessionModel{}).
		Where("class_session_registration_id = ? AND class_session_date = ?",
			req.ClassSessionRegistrationID, time.Time(req.ClassSessionDate)).
		Count(&exists).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if exists > 0 {
		return fiber.NewError(fiber.StatusConflict, "Ya existe un registro de sesión para esa fecha")
	}

	m := req.ToModel(academyID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar la sesión")
	}
	return helper.JsonCreated(c, "Sesión registrada", m)
}

/* ===================== READ ===================== */

// GET /a/class-sessions?registration_id=&date=
func (h *ClassSessionController) List(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 25, 100)

	base := h.DB.Model(&model.ClassSessionModel{}).
		Where("class_session_academy_id = ?", academyID)

	if raw := c.Query("registration_id"); raw != "" {
		base = base.Where("class_session_registration_id = ?", raw)
	}
	if raw := c.Query("date"); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date inválido (se espera YYYY-MM-DD)")
		}
		base = base.Where("class_session_date = ?", d)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.ClassSessionModel
	if err := base.
		Order("class_session_date DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", list,
		helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

/* ===================== UPDATE ===================== */

// PUT /a/class-sessions/:id
func (h *ClassSessionController) Update(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateClassSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	var curr model.ClassSessionModel
	if err := h.DB.
		Where("class_session_id = ? AND class_session_academy_id = ?", c.Params("id"), academyID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sesión no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&curr)
	if err := h.DB.Save(&curr).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la sesión")
	}
	return helper.JsonUpdated(c, "Sesión actualizada", curr)
}

/* ===================== DELETE ===================== */

// DELETE /a/class-sessions/:id
func (h *ClassSessionController) Delete(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("class_session_id = ? AND class_session_academy_id = ?", c.Params("id"), academyID).
		Delete(&model.ClassSessionModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Sesión no encontrada")
	}
	return helper.JsonDeleted(c, "Sesión eliminada", fiber.Map{"id": c.Params("id")})
}
