package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "armonia_backend/internals/features/academics/subjects/dto"
	model "armonia_backend/internals/features/academics/subjects/model"
	helper "armonia_backend/internals/helpers"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

var validate = validator.New()

// POST /a/subjects
func (h *SubjectController) Create(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel(academyID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la materia")
	}

	return helper.JsonCreated(c, "Materia creada", dto.FromModel(*m))
}

// GET /a/subjects?q=
func (h *SubjectController) List(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.SubjectModel{}).
		Where("subject_academy_id = ?", academyID)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		base = base.Where("subject_name ILIKE ?", fmt.Sprintf("%%%s%%", q))
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.SubjectModel
	if err := base.
		Order("subject_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

// GET /a/subjects/:id
func (h *SubjectController) GetByID(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.SubjectModel
	if err := h.DB.
		Where("subject_id = ? AND subject_academy_id = ?", c.Params("id"), academyID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Materia no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

// PUT /a/subjects/:id
func (h *SubjectController) Update(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	var curr model.SubjectModel
	if err := h.DB.
		Where("subject_id = ? AND subject_academy_id = ?", c.Params("id"), academyID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Materia no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&curr)
	if err := h.DB.Save(&curr).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la materia")
	}

	return helper.JsonUpdated(c, "Materia actualizada", dto.FromModel(curr))
}

// DELETE /a/subjects/:id
func (h *SubjectController) Delete(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("subject_id = ? AND subject_academy_id = ?", c.Params("id"), academyID).
		Delete(&model.SubjectModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Materia no encontrada")
	}

	return helper.JsonDeleted(c, "Materia eliminada", fiber.Map{"id": c.Params("id")})
}
