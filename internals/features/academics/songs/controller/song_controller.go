package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "armonia_backend/internals/features/academics/songs/dto"
	model "armonia_backend/internals/features/academics/songs/model"
	helper "armonia_backend/internals/helpers"
)

type SongController struct {
	DB *gorm.DB
}

func NewSongController(db *gorm.DB) *SongController {
	return &SongController{DB: db}
}

var validate = validator.New()

// POST /a/songs
func (h *SongController) Create(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateSongRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel(academyID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la canción")
	}

	return helper.JsonCreated(c, "Canción creada", dto.FromModel(*m))
}

// GET /a/songs?q=&level=
func (h *SongController) List(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.SongModel{}).
		Where("song_academy_id = ?", academyID)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := fmt.Sprintf("%%%s%%", q)
		base = base.Where("(song_title ILIKE ? OR song_composer ILIKE ?)", like, like)
	}
	if level := c.QueryInt("level"); level > 0 {
		base = base.Where("song_level = ?", level)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.SongModel
	if err := base.
		Order("song_title ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

// GET /a/songs/:id
func (h *SongController) GetByID(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.SongModel
	if err := h.DB.
		Where("song_id = ? AND song_academy_id = ?", c.Params("id"), academyID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Canción no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

// PUT /a/songs/:id
func (h *SongController) Update(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateSongRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	var curr model.SongModel
	if err := h.DB.
		Where("song_id = ? AND song_academy_id = ?", c.Params("id"), academyID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Canción no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&curr)
	if err := h.DB.Save(&curr).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la canción")
	}

	return helper.JsonUpdated(c, "Canción actualizada", dto.FromModel(curr))
}

// DELETE /a/songs/:id
func (h *SongController) Delete(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("song_id = ? AND song_academy_id = ?", c.Params("id"), academyID).
		Delete(&model.SongModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Canción no encontrada")
	}

	return helper.JsonDeleted(c, "Canción eliminada", fiber.Map{"id": c.Params("id")})
}
