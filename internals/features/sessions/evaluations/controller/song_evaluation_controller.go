package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	songModel "armonia_backend/internals/features/academics/songs/model"
	profileModel "armonia_backend/internals/features/people/profiles/model"
	dto "armonia_backend/internals/features/sessions/evaluations/dto"
	model "armonia_backend/internals/features/sessions/evaluations/model"
	helper "armonia_backend/internals/helpers"
)

type SongEvaluationController struct {
	DB *gorm.DB
}

func NewSongEvaluationController(db *gorm.DB) *SongEvaluationController {
	return &SongEvaluationController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */

// POST /a/song-evaluations
func (h *SongEvaluationController) Create(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateSongEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	var count int64
	if err := h.DB.Model(&profileModel.ProfileModel{}).
		Where("profile_id = ? AND profile_academy_id = ? AND profile_role = ?",
			req.SongEvaluationStudentID, academyID, profileModel.ProfileRoleStudent).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Alumno no encontrado en esta academia")
	}

	if err := h.DB.Model(&songModel.SongModel{}).
		Where("song_id = ? AND song_academy_id = ?", req.SongEvaluationSongID, academyID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Canción no encontrada")
	}

	// una evaluación viva por pareja alumno × canción
	if err := h.DB.Model(&model.SongEvaluationModel{}).
		Where("song_evaluation_student_id = ? AND song_evaluation_song_id = ?",
			req.SongEvaluationStudentID, req.SongEvaluationSongID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "El alumno ya tiene una evaluación para esta canción")
	}

	m := req.ToModel(academyID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la evaluación")
	}
	return helper.JsonCreated(c, "Evaluación creada", m)
}

/* ===================== READ ===================== */

// GET /a/song-evaluations?student_id=&song_id=&status=
func (h *SongEvaluationController) List(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 25, 100)

	base := h.DB.Model(&model.SongEvaluationModel{}).
		Where("song_evaluation_academy_id = ?", academyID)

	if raw := c.Query("student_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "student_id inválido")
		}
		base = base.Where("song_evaluation_student_id = ?", id)
	}
	if raw := c.Query("song_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "song_id inválido")
		}
		base = base.Where("song_evaluation_song_id = ?", id)
	}
	if raw := c.Query("status"); raw != "" {
		base = base.Where("song_evaluation_status = ?", raw)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.SongEvaluationModel
	if err := base.
		Order("song_evaluation_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", list,
		helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

/* ===================== UPDATE ===================== */

// PUT /a/song-evaluations/:id
func (h *SongEvaluationController) Update(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateSongEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	var curr model.SongEvaluationModel
	if err := h.DB.
		Where("song_evaluation_id = ? AND song_evaluation_academy_id = ?", c.Params("id"), academyID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Evaluación no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&curr)
	if err := h.DB.Save(&curr).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la evaluación")
	}
	return helper.JsonUpdated(c, "Evaluación actualizada", curr)
}

/* ===================== DELETE ===================== */

// DELETE /a/song-evaluations/:id
func (h *SongEvaluationController) Delete(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("song_evaluation_id = ? AND song_evaluation_academy_id = ?", c.Params("id"), academyID).
		Delete(&model.SongEvaluationModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Evaluación no encontrada")
	}
	return helper.JsonDeleted(c, "Evaluación eliminada", fiber.Map{"id": c.Params("id")})
}
