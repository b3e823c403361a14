package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "armonia_backend/internals/features/people/profiles/dto"
	model "armonia_backend/internals/features/people/profiles/model"
	helper "armonia_backend/internals/helpers"
)

type GuardianStudentController struct {
	DB *gorm.DB
}

func NewGuardianStudentController(db *gorm.DB) *GuardianStudentController {
	return &GuardianStudentController{DB: db}
}

/* ======================= LINK ======================= */
// POST /a/guardian-students
func (h *GuardianStudentController) Link(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.LinkGuardianStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	// ambos perfiles deben existir en la academia con el rol correcto
	var guardian model.ProfileModel
	if err := h.DB.
		Where("profile_id = ? AND profile_academy_id = ? AND profile_role = ?",
			req.GuardianID, academyID, model.ProfileRoleGuardian).
		First(&guardian).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Acudiente no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	var student model.ProfileModel
	if err := h.DB.
		Where("profile_id = ? AND profile_academy_id = ? AND profile_role = ?",
			req.StudentID, academyID, model.ProfileRoleStudent).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Alumno no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var existing model.GuardianStudentModel
	err = h.DB.
		Where("guardian_student_guardian_id = ? AND guardian_student_student_id = ?", req.GuardianID, req.StudentID).
		First(&existing).Error
	if err == nil {
		return fiber.NewError(fiber.StatusConflict, "El vínculo ya existe")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	link := model.GuardianStudentModel{
		GuardianStudentAcademyID:  academyID,
		GuardianStudentGuardianID: req.GuardianID,
		GuardianStudentStudentID:  req.StudentID,
	}
	if err := h.DB.Create(&link).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el vínculo")
	}

	return helper.JsonCreated(c, "Vínculo acudiente-alumno creado", link)
}

/* ======================= UNLINK (SOFT) ======================= */
// DELETE /a/guardian-students/:id
func (h *GuardianStudentController) Unlink(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	idStr := c.Params("id")

	res := h.DB.
		Where("guardian_student_id = ? AND guardian_student_academy_id = ?", idStr, academyID).
		Delete(&model.GuardianStudentModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Vínculo no encontrado")
	}

	return helper.JsonDeleted(c, "Vínculo eliminado", fiber.Map{"id": idStr})
}

/* ======================= MY CHILDREN ======================= */
// GET /u/guardians/me/children — el acudiente ve a sus hijos
func (h *GuardianStudentController) MyChildren(c *fiber.Ctx) error {
	guardianProfileID, err := helper.GetProfileIDFromToken(c)
	if err != nil {
		return err
	}

	var children []model.ProfileModel
	if err := h.DB.
		Joins("JOIN guardian_students gs ON gs.guardian_student_student_id = profiles.profile_id AND gs.guardian_student_deleted_at IS NULL").
		Where("gs.guardian_student_guardian_id = ?", guardianProfileID).
		Find(&children).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModels(children))
}
