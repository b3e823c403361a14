package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "armonia_backend/internals/features/academics/course_registrations/dto"
	model "armonia_backend/internals/features/academics/course_registrations/model"
	periodModel "armonia_backend/internals/features/academics/periods/model"
	subjectModel "armonia_backend/internals/features/academics/subjects/model"
	profileModel "armonia_backend/internals/features/people/profiles/model"
	helper "armonia_backend/internals/helpers"
)

type CourseRegistrationController struct {
	DB *gorm.DB
}

func NewCourseRegistrationController(db *gorm.DB) *CourseRegistrationController {
	return &CourseRegistrationController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */

// POST /a/course-registrations
func (h *CourseRegistrationController) Create(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateCourseRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := h.ensureProfile(academyID, req.CourseRegistrationStudentID, profileModel.ProfileRoleStudent, "Alumno"); err != nil {
		return err
	}
	if err := h.ensureProfile(academyID, req.CourseRegistrationProfessorID, profileModel.ProfileRoleProfessor, "Profesor"); err != nil {
		return err
	}

	var count int64
	if err := h.DB.Model(&subjectModel.SubjectModel{}).
		Where("subject_id = ? AND subject_academy_id = ?", req.CourseRegistrationSubjectID, academyID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Materia no encontrada")
	}

	if err := h.DB.Model(&periodModel.PeriodModel{}).
		Where("period_id = ? AND period_academy_id = ?", req.CourseRegistrationPeriodID, academyID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Periodo no encontrado")
	}

	// misma tripleta para el mismo alumno y periodo → duplicado
	if err := h.DB.Model(&model.CourseRegistrationModel{}).
		Where(`course_registration_academy_id = ?
			AND course_registration_student_id = ?
			AND course_registration_professor_id = ?
			AND course_registration_subject_id = ?
			AND course_registration_period_id = ?`,
			academyID, req.CourseRegistrationStudentID, req.CourseRegistrationProfessorID,
			req.CourseRegistrationSubjectID, req.CourseRegistrationPeriodID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "El alumno ya está matriculado en este curso")
	}

	m := req.ToModel(academyID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la matrícula")
	}
	return helper.JsonCreated(c, "Matrícula creada", m)
}

/* ===================== READ ===================== */

// GET /a/course-registrations?student_id=&professor_id=&period_id=
func (h *CourseRegistrationController) List(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 25, 100)

	base := h.detailQuery().
		Where("cr.course_registration_academy_id = ?", academyID)

	for param, column := range map[string]string{
		"student_id":   "cr.course_registration_student_id",
		"professor_id": "cr.course_registration_professor_id",
		"period_id":    "cr.course_registration_period_id",
	} {
		if raw := c.Query(param); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, param+" inválido")
			}
			base = base.Where(column+" = ?", id)
		}
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []dto.CourseRegistrationDetail
	if err := base.
		Order("cr.course_registration_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Scan(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", list,
		helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

// GET /u/my-children/:studentId/courses — visible para el acudiente vinculado
func (h *CourseRegistrationController) ListForMyChild(c *fiber.Ctx) error {
	guardianProfileID, err := helper.GetProfileIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var linked int64
	if err := h.DB.Table("guardian_students").
		Where("guardian_student_guardian_id = ? AND guardian_student_student_id = ? AND guardian_student_deleted_at IS NULL",
			guardianProfileID, studentID).
		Count(&linked).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if linked == 0 {
		return fiber.NewError(fiber.StatusForbidden, "Este alumno no está vinculado a su cuenta")
	}

	var list []dto.CourseRegistrationDetail
	if err := h.detailQuery().
		Where("cr.course_registration_student_id = ?", studentID).
		Order("cr.course_registration_created_at DESC").
		Scan(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", list)
}

/* ===================== UPDATE ===================== */

// PUT /a/course-registrations/:id
func (h *CourseRegistrationController) Update(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateCourseRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	var curr model.CourseRegistrationModel
	if err := h.DB.
		Where("course_registration_id = ? AND course_registration_academy_id = ?", c.Params("id"), academyID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Matrícula no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if req.CourseRegistrationProfessorID != nil {
		if err := h.ensureProfile(academyID, *req.CourseRegistrationProfessorID, profileModel.ProfileRoleProfessor, "Profesor"); err != nil {
			return err
		}
	}

	req.ApplyTo(&curr)
	if err := h.DB.Save(&curr).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la matrícula")
	}
	return helper.JsonUpdated(c, "Matrícula actualizada", curr)
}

/* ===================== DELETE ===================== */

// DELETE /a/course-registrations/:id
func (h *CourseRegistrationController) Delete(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("course_registration_id = ? AND course_registration_academy_id = ?", c.Params("id"), academyID).
		Delete(&model.CourseRegistrationModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Matrícula no encontrada")
	}
	return helper.JsonDeleted(c, "Matrícula eliminada", fiber.Map{"id": c.Params("id")})
}

/* ===================== helpers ===================== */

func (h *CourseRegistrationController) detailQuery() *gorm.DB {
	return h.DB.Table("course_registrations AS cr").
		Select(`cr.*,
			st.profile_full_name AS student_name,
			pr.profile_full_name AS professor_name,
			su.subject_name AS subject_name,
			pe.period_name AS period_name`).
		Joins("JOIN profiles st ON st.profile_id = cr.course_registration_student_id").
		Joins("JOIN profiles pr ON pr.profile_id = cr.course_registration_professor_id").
		Joins("JOIN subjects su ON su.subject_id = cr.course_registration_subject_id").
		Joins("JOIN periods pe ON pe.period_id = cr.course_registration_period_id").
		Where("cr.course_registration_deleted_at IS NULL")
}

func (h *CourseRegistrationController) ensureProfile(academyID, profileID uuid.UUID, role profileModel.ProfileRoleEnum, label string) error {
	var count int64
	if err := h.DB.Model(&profileModel.ProfileModel{}).
		Where("profile_id = ? AND profile_academy_id = ? AND profile_role = ?", profileID, academyID, role).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, label+" no encontrado en esta academia")
	}
	return nil
}
