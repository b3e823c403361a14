package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	profileModel "armonia_backend/internals/features/people/profiles/model"
	dto "armonia_backend/internals/features/scheduling/schedules/dto"
	model "armonia_backend/internals/features/scheduling/schedules/model"
	"armonia_backend/internals/features/scheduling/schedules/service"
	helper "armonia_backend/internals/helpers"
)

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */

// POST /a/schedules
func (h *ScheduleController) Create(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	slot, err := service.ValidateSlot(req.ScheduleDayOfWeek, req.ScheduleStartTime, req.ScheduleEndTime)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.ensureProfessor(academyID, req.ScheduleProfessorID); err != nil {
		return err
	}

	overlap, err := service.FindProfessorOverlap(h.DB, academyID, req.ScheduleProfessorID, slot, nil)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if overlap != nil {
		return fiber.NewError(fiber.StatusConflict,
			fmt.Sprintf("El profesor ya tiene una clase el %s de %s a %s",
				service.DayName(overlap.ScheduleDayOfWeek), overlap.ScheduleStartTime, overlap.ScheduleEndTime))
	}

	m := req.ToModel(academyID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el horario")
	}
	return helper.JsonCreated(c, "Horario creado", m)
}

/* ===================== READ ===================== */

// GET /a/schedules?professor_id=&day_of_week=
func (h *ScheduleController) List(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 25, 100)

	base := h.DB.Model(&model.ScheduleModel{}).
		Where("schedule_academy_id = ?", academyID)

	if raw := c.Query("professor_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "professor_id inválido")
		}
		base = base.Where("schedule_professor_id = ?", id)
	}
	if day := c.QueryInt("day_of_week"); day != 0 {
		base = base.Where("schedule_day_of_week = ?", day)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.ScheduleModel
	if err := base.
		Order("schedule_day_of_week ASC, schedule_start_time ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", list,
		helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

// GET /a/schedules/:id
func (h *ScheduleController) GetByID(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.ScheduleModel
	if err := h.DB.
		Where("schedule_id = ? AND schedule_academy_id = ?", c.Params("id"), academyID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Horario no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", row)
}

/* ===================== UPDATE ===================== */

// PUT /a/schedules/:id
func (h *ScheduleController) Update(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	var curr model.ScheduleModel
	if err := h.DB.
		Where("schedule_id = ? AND schedule_academy_id = ?", c.Params("id"), academyID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Horario no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&curr)

	slot, err := service.ValidateSlot(curr.ScheduleDayOfWeek, curr.ScheduleStartTime, curr.ScheduleEndTime)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if req.ScheduleProfessorID != nil {
		if err := h.ensureProfessor(academyID, *req.ScheduleProfessorID); err != nil {
			return err
		}
	}

	overlap, err := service.FindProfessorOverlap(h.DB, academyID, curr.ScheduleProfessorID, slot, &curr.ScheduleID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if overlap != nil {
		return fiber.NewError(fiber.StatusConflict,
			fmt.Sprintf("El profesor ya tiene una clase el %s de %s a %s",
				service.DayName(overlap.ScheduleDayOfWeek), overlap.ScheduleStartTime, overlap.ScheduleEndTime))
	}

	if err := h.DB.Save(&curr).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el horario")
	}
	return helper.JsonUpdated(c, "Horario actualizado", curr)
}

/* ===================== DELETE ===================== */

// DELETE /a/schedules/:id
func (h *ScheduleController) Delete(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("schedule_id = ? AND schedule_academy_id = ?", c.Params("id"), academyID).
		Delete(&model.ScheduleModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Horario no encontrado")
	}
	return helper.JsonDeleted(c, "Horario eliminado", fiber.Map{"id": c.Params("id")})
}

func (h *ScheduleController) ensureProfessor(academyID, professorID uuid.UUID) error {
	var count int64
	if err := h.DB.Model(&profileModel.ProfileModel{}).
		Where("profile_id = ? AND profile_academy_id = ? AND profile_role = ?",
			professorID, academyID, profileModel.ProfileRoleProfessor).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Profesor no encontrado en esta academia")
	}
	return nil
}
