package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileModel "armonia_backend/internals/features/people/profiles/model"
	dto "armonia_backend/internals/features/sessions/badges/dto"
	model "armonia_backend/internals/features/sessions/badges/model"
	helper "armonia_backend/internals/helpers"
)

type BadgeController struct {
	DB *gorm.DB
}

func NewBadgeController(db *gorm.DB) *BadgeController {
	return &BadgeController{DB: db}
}

var validate = validator.New()

/* ===================== CRUD ===================== */

// POST /a/badges
func (h *BadgeController) Create(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateBadgeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel(academyID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la insignia")
	}
	return helper.JsonCreated(c, "Insignia creada", m)
}

// GET /a/badges
func (h *BadgeController) List(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 25, 100)

	base := h.DB.Model(&model.BadgeModel{}).
		Where("badge_academy_id = ?", academyID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.BadgeModel
	if err := base.
		Order("badge_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", list,
		helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

// PUT /a/badges/:id
func (h *BadgeController) Update(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateBadgeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	var curr model.BadgeModel
	if err := h.DB.
		Where("badge_id = ? AND badge_academy_id = ?", c.Params("id"), academyID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Insignia no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&curr)
	if err := h.DB.Save(&curr).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la insignia")
	}
	return helper.JsonUpdated(c, "Insignia actualizada", curr)
}

// DELETE /a/badges/:id
func (h *BadgeController) Delete(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("badge_id = ? AND badge_academy_id = ?", c.Params("id"), academyID).
		Delete(&model.BadgeModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Insignia no encontrada")
	}
	return helper.JsonDeleted(c, "Insignia eliminada", fiber.Map{"id": c.Params("id")})
}

/* ===================== AWARD ===================== */

// POST /a/badges/award
func (h *BadgeController) Award(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.AwardBadgeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	var count int64
	if err := h.DB.Model(&profileModel.ProfileModel{}).
		Where("profile_id = ? AND profile_academy_id = ? AND profile_role = ?",
			req.StudentBadgeStudentID, academyID, profileModel.ProfileRoleStudent).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Alumno no encontrado en esta academia")
	}

	if err := h.DB.Model(&model.BadgeModel{}).
		Where("badge_id = ? AND badge_academy_id = ?", req.StudentBadgeBadgeID, academyID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Insignia no encontrada")
	}

	if err := h.DB.Model(&model.StudentBadgeModel{}).
		Where("student_badge_student_id = ? AND student_badge_badge_id = ?",
			req.StudentBadgeStudentID, req.StudentBadgeBadgeID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "El alumno ya tiene esta insignia")
	}

	award := model.StudentBadgeModel{
		StudentBadgeAcademyID: academyID,
		StudentBadgeStudentID: req.StudentBadgeStudentID,
		StudentBadgeBadgeID:   req.StudentBadgeBadgeID,
	}
	if err := h.DB.Create(&award).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo otorgar la insignia")
	}
	return helper.JsonCreated(c, "Insignia otorgada", award)
}

// GET /a/students/:studentId/badges
func (h *BadgeController) ListForStudent(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var list []model.BadgeModel
	if err := h.DB.Model(&model.BadgeModel{}).
		Joins("JOIN student_badges sb ON sb.student_badge_badge_id = badges.badge_id AND sb.student_badge_deleted_at IS NULL").
		Where("sb.student_badge_student_id = ? AND badges.badge_academy_id = ?",
			c.Params("studentId"), academyID).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", list)
}
