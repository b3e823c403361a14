package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "armonia_backend/internals/features/academics/periods/dto"
	model "armonia_backend/internals/features/academics/periods/model"
	helper "armonia_backend/internals/helpers"
)

type PeriodController struct {
	DB *gorm.DB
}

func NewPeriodController(db *gorm.DB) *PeriodController {
	return &PeriodController{DB: db}
}

var validate = validator.New()

/* ======================= CREATE ======================= */
// POST /a/periods
func (h *PeriodController) Create(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreatePeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel(academyID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el periodo")
	}

	return helper.JsonCreated(c, "Periodo creado", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /a/periods?year=
func (h *PeriodController) List(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.PeriodModel{}).
		Where("period_academy_id = ?", academyID)
	if year := c.QueryInt("year"); year > 0 {
		base = base.Where("period_year = ?", year)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.PeriodModel
	if err := base.
		Order("period_year DESC, period_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

/* ======================== GET BY ID ======================== */
// GET /a/periods/:id — incluye sus fechas
func (h *PeriodController) GetByID(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.PeriodModel
	if err := h.DB.
		Where("period_id = ? AND period_academy_id = ?", c.Params("id"), academyID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Periodo no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var dates []model.PeriodDateModel
	if err := h.DB.
		Where("period_date_period_id = ?", row.PeriodID).
		Order("period_date_date ASC").
		Find(&dates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"period": dto.FromModel(row),
		"dates":  dates,
	})
}

/* ======================== UPDATE (partial) ======================== */
// PUT /a/periods/:id
func (h *PeriodController) Update(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdatePeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	var curr model.PeriodModel
	if err := h.DB.
		Where("period_id = ? AND period_academy_id = ?", c.Params("id"), academyID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Periodo no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&curr)
	if err := h.DB.Save(&curr).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el periodo")
	}

	return helper.JsonUpdated(c, "Periodo actualizado", dto.FromModel(curr))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /a/periods/:id
func (h *PeriodController) Delete(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("period_id = ? AND period_academy_id = ?", c.Params("id"), academyID).
		Delete(&model.PeriodModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Periodo no encontrado")
	}

	return helper.JsonDeleted(c, "Periodo eliminado", fiber.Map{"id": c.Params("id")})
}

/* ======================== DATES ======================== */
// POST /a/periods/:id/dates — alta bulk del calendario
func (h *PeriodController) AddDates(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var period model.PeriodModel
	if err := h.DB.
		Where("period_id = ? AND period_academy_id = ?", c.Params("id"), academyID).
		First(&period).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Periodo no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.AddPeriodDatesRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	rows := make([]model.PeriodDateModel, 0, len(req.Dates))
	for _, d := range req.Dates {
		rows = append(rows, model.PeriodDateModel{
			PeriodDateAcademyID: academyID,
			PeriodDatePeriodID:  period.PeriodID,
			PeriodDateDate:      d.Date,
			PeriodDateType:      d.Type,
			PeriodDateNote:      d.Note,
		})
	}
	if err := h.DB.Create(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron registrar las fechas")
	}

	return helper.JsonCreated(c, "Fechas registradas", rows)
}

// DELETE /a/periods/:id/dates/:dateId
func (h *PeriodController) DeleteDate(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("period_date_id = ? AND period_date_period_id = ? AND period_date_academy_id = ?",
			c.Params("dateId"), c.Params("id"), academyID).
		Delete(&model.PeriodDateModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Fecha no encontrada")
	}

	return helper.JsonDeleted(c, "Fecha eliminada", fiber.Map{"id": c.Params("dateId")})
}
