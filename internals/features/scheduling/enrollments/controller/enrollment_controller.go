package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	profileModel "armonia_backend/internals/features/people/profiles/model"
	dto "armonia_backend/internals/features/scheduling/enrollments/dto"
	model "armonia_backend/internals/features/scheduling/enrollments/model"
	"armonia_backend/internals/features/scheduling/enrollments/service"
	scheduleModel "armonia_backend/internals/features/scheduling/schedules/model"
	helper "armonia_backend/internals/helpers"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

var validate = validator.New()

/* ===================== ENROLL (single) ===================== */

// POST /a/enrollments
func (h *EnrollmentController) Enroll(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	schedule, err := h.loadSchedule(academyID, req.EnrollmentScheduleID)
	if err != nil {
		return err
	}
	if err := h.ensureStudent(academyID, req.EnrollmentStudentID); err != nil {
		return err
	}

	out, err := service.EnrollStudent(h.DB, academyID, req.EnrollmentStudentID, schedule)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	switch {
	case out.Duplicate != nil:
		return fiber.NewError(fiber.StatusConflict, "El alumno ya está inscrito en este horario")
	case len(out.Conflicts) > 0:
		return helper.JsonConflictWithData(c, "El horario se cruza con otra clase del alumno", fiber.Map{
			"conflicts": out.Conflicts,
		})
	case out.Reactivated:
		return helper.JsonOK(c, "Inscripción reactivada", out.Enrollment)
	default:
		return helper.JsonCreated(c, "Alumno inscrito", out.Enrollment)
	}
}

/* ===================== ENROLL (bulk, 207) ===================== */

// POST /a/enrollments/bulk
// Cada alumno se procesa por separado; el fallo de uno nunca aborta el lote.
func (h *EnrollmentController) BulkEnroll(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.BulkEnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	schedule, err := h.loadSchedule(academyID, req.EnrollmentScheduleID)
	if err != nil {
		return err
	}

	result := dto.BulkEnrollResult{
		Enrolled:   []dto.EnrolledItem{},
		Duplicates: []dto.DuplicateItem{},
		Conflicts:  []dto.ConflictItem{},
		Failed:     []dto.FailedItem{},
	}

	for _, studentID := range req.StudentIDs {
		if err := h.ensureStudent(academyID, studentID); err != nil {
			var fe *fiber.Error
			reason := "Error al verificar el alumno"
			if errors.As(err, &fe) {
				reason = fe.Message
			}
			result.Failed = append(result.Failed, dto.FailedItem{StudentID: studentID, Reason: reason})
			continue
		}

		out, err := service.EnrollStudent(h.DB, academyID, studentID, schedule)
		if err != nil {
			result.Failed = append(result.Failed, dto.FailedItem{
				StudentID: studentID,
				Reason:    fmt.Sprintf("Error al procesar la inscripción: %v", err),
			})
			continue
		}

		switch {
		case out.Duplicate != nil:
			result.Duplicates = append(result.Duplicates, dto.DuplicateItem{
				StudentID:    studentID,
				EnrollmentID: out.Duplicate.EnrollmentID,
			})
		case len(out.Conflicts) > 0:
			result.Conflicts = append(result.Conflicts, dto.ConflictItem{
				StudentID: studentID,
				Conflicts: out.Conflicts,
			})
		default:
			result.Enrolled = append(result.Enrolled, dto.EnrolledItem{
				StudentID:    studentID,
				EnrollmentID: out.Enrollment.EnrollmentID,
				Reactivated:  out.Reactivated,
			})
		}
	}

	return helper.JsonMultiStatus(c, "Inscripción masiva procesada", result)
}

/* ===================== READ ===================== */

// GET /a/enrollments?student_id=&schedule_id=&active=
func (h *EnrollmentController) List(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 25, 100)

	base := h.DB.Model(&model.EnrollmentModel{}).
		Where("enrollment_academy_id = ?", academyID)

	if raw := c.Query("student_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "student_id inválido")
		}
		base = base.Where("enrollment_student_id = ?", id)
	}
	if raw := c.Query("schedule_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "schedule_id inválido")
		}
		base = base.Where("enrollment_schedule_id = ?", id)
	}
	if raw := c.Query("active"); raw != "" {
		base = base.Where("enrollment_is_active = ?", raw == "true")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.EnrollmentModel
	if err := base.
		Order("enrollment_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", list,
		helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

/* ===================== DEACTIVATE ===================== */

// PATCH /a/enrollments/:id/deactivate
func (h *EnrollmentController) Deactivate(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.Model(&model.EnrollmentModel{}).
		Where("enrollment_id = ? AND enrollment_academy_id = ? AND enrollment_is_active = TRUE",
			c.Params("id"), academyID).
		Update("enrollment_is_active", false)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Inscripción activa no encontrada")
	}
	return helper.JsonUpdated(c, "Inscripción dada de baja", fiber.Map{"id": c.Params("id")})
}

/* ===================== helpers ===================== */

func (h *EnrollmentController) loadSchedule(academyID, scheduleID uuid.UUID) (*scheduleModel.ScheduleModel, error) {
	var schedule scheduleModel.ScheduleModel
	if err := h.DB.
		Where("schedule_id = ? AND schedule_academy_id = ?", scheduleID, academyID).
		First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Horario no encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &schedule, nil
}

func (h *EnrollmentController) ensureStudent(academyID, studentID uuid.UUID) error {
	var count int64
	if err := h.DB.Model(&profileModel.ProfileModel{}).
		Where("profile_id = ? AND profile_academy_id = ? AND profile_role = ?",
			studentID, academyID, profileModel.ProfileRoleStudent).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Alumno no encontrado en esta academia")
	}
	return nil
}
