package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "armonia_backend/internals/features/academies/academies/dto"
	model "armonia_backend/internals/features/academies/academies/model"
	helper "armonia_backend/internals/helpers"
)

type AcademyController struct {
	DB *gorm.DB
}

func NewAcademyController(db *gorm.DB) *AcademyController {
	return &AcademyController{DB: db}
}

var validate = validator.New()

/* ======================= CREATE ======================= */
// POST /o/academies
func (h *AcademyController) Create(c *fiber.Ctx) error {
	var req dto.CreateAcademyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Ya existe una academia con ese slug")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la academia")
	}

	return helper.JsonCreated(c, "Academia creada", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /o/academies?q=&page=&per_page=
func (h *AcademyController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.AcademyModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := fmt.Sprintf("%%%s%%", q)
		base = base.Where("(academy_name ILIKE ? OR academy_slug ILIKE ?)", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.AcademyModel
	if err := base.
		Order("academy_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

/* ======================== GET BY ID ======================== */
// GET /o/academies/:id
func (h *AcademyController) GetByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID vacío")
	}

	var row model.AcademyModel
	if err := h.DB.Where("academy_id = ?", idStr).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Academia no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== UPDATE (partial) ======================== */
// PUT /o/academies/:id
func (h *AcademyController) Update(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID vacío")
	}

	var req dto.UpdateAcademyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	var curr model.AcademyModel
	if err := h.DB.Where("academy_id = ?", idStr).First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Academia no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&curr)
	if err := h.DB.Save(&curr).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Ya existe una academia con ese slug")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la academia")
	}

	return helper.JsonUpdated(c, "Academia actualizada", dto.FromModel(curr))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /o/academies/:id
func (h *AcademyController) Delete(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID vacío")
	}

	res := h.DB.Where("academy_id = ?", idStr).Delete(&model.AcademyModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Academia no encontrada")
	}

	return helper.JsonDeleted(c, "Academia eliminada", fiber.Map{"id": idStr})
}
