package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "armonia_backend/internals/features/people/profiles/dto"
	model "armonia_backend/internals/features/people/profiles/model"
	helper "armonia_backend/internals/helpers"
)

// ProfileController sirve el CRUD de un rol concreto sobre la tabla profiles.
// Se instancia una vez por recurso (students / professors / guardians).
type ProfileController struct {
	DB    *gorm.DB
	Role  model.ProfileRoleEnum
	Label string // minúscula, para mitad de frase: "alumno"
	Title string // capitalizado, para inicio de mensaje: "Alumno"
}

func NewStudentController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db, Role: model.ProfileRoleStudent, Label: "alumno", Title: "Alumno"}
}

func NewProfessorController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db, Role: model.ProfileRoleProfessor, Label: "profesor", Title: "Profesor"}
}

func NewGuardianController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db, Role: model.ProfileRoleGuardian, Label: "acudiente", Title: "Acudiente"}
}

var validate = validator.New()

/* ======================= CREATE ======================= */
// POST /a/{students|professors|guardians}
func (h *ProfileController) Create(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel(academyID, h.Role)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el "+h.Label)
	}

	return helper.JsonCreated(c, h.Title+" creado", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /a/{...}?q=&page=&per_page=
func (h *ProfileController) List(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.ProfileModel{}).
		Where("profile_academy_id = ? AND profile_role = ?", academyID, h.Role)

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := fmt.Sprintf("%%%s%%", q)
		base = base.Where("(profile_full_name ILIKE ? OR profile_email ILIKE ?)", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.ProfileModel
	if err := base.
		Order("profile_full_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

/* ======================== GET BY ID ======================== */
func (h *ProfileController) GetByID(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	idStr := c.Params("id")
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID vacío")
	}

	var row model.ProfileModel
	if err := h.DB.
		Where("profile_id = ? AND profile_academy_id = ? AND profile_role = ?", idStr, academyID, h.Role).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, h.Title+" no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== UPDATE (partial) ======================== */
func (h *ProfileController) Update(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID vacío")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	var curr model.ProfileModel
	if err := h.DB.
		Where("profile_id = ? AND profile_academy_id = ? AND profile_role = ?", idStr, academyID, h.Role).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, h.Title+" no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&curr)
	if err := h.DB.Save(&curr).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el "+h.Label)
	}

	return helper.JsonUpdated(c, h.Title+" actualizado", dto.FromModel(curr))
}

/* ======================== DELETE (SOFT) ======================== */
func (h *ProfileController) Delete(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	idStr := c.Params("id")
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID vacío")
	}

	res := h.DB.
		Where("profile_id = ? AND profile_academy_id = ? AND profile_role = ?", idStr, academyID, h.Role).
		Delete(&model.ProfileModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, h.Title+" no encontrado")
	}

	return helper.JsonDeleted(c, h.Title+" eliminado", fiber.Map{"id": idStr})
}

/* ======================== PHOTO ======================== */
// PUT /a/{...}/:id/photo  (multipart "photo" → webp 512px)
func (h *ProfileController) UploadPhoto(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	idStr := c.Params("id")

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Falta el archivo 'photo'")
	}

	webpBytes, err := helper.ConvertProfilePhotoToWebP(fileHeader)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Model(&model.ProfileModel{}).
		Where("profile_id = ? AND profile_academy_id = ? AND profile_role = ?", idStr, academyID, h.Role).
		Update("profile_photo", webpBytes)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo guardar la foto")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, h.Title+" no encontrado")
	}

	return helper.JsonUpdated(c, "Foto actualizada", fiber.Map{"id": idStr})
}

// GET /a/{...}/:id/photo
func (h *ProfileController) GetPhoto(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	idStr := c.Params("id")

	var row model.ProfileModel
	if err := h.DB.
		Select("profile_photo").
		Where("profile_id = ? AND profile_academy_id = ? AND profile_role = ?", idStr, academyID, h.Role).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, h.Title+" no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if len(row.ProfilePhoto) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Sin foto")
	}

	c.Set(fiber.HeaderContentType, "image/webp")
	return c.Send(row.ProfilePhoto)
}
