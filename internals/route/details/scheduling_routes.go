// file: internals/route/details/scheduling_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"armonia_backend/internals/constants"
	enrollmentController "armonia_backend/internals/features/scheduling/enrollments/controller"
	scheduleController "armonia_backend/internals/features/scheduling/schedules/controller"
	authMiddleware "armonia_backend/internals/middlewares/auth"
)

// SchedulingRoutes: franjas semanales e inscripciones.
func SchedulingRoutes(r fiber.Router, db *gorm.DB) {
	directorOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorDirector("la gestión de horarios"),
		constants.RoleDirector,
	)

	schedules := scheduleController.NewScheduleController(db)
	sc := r.Group("/schedules")
	sc.Get("/", schedules.List)
	sc.Get("/:id", schedules.GetByID)
	sc.Post("/", directorOnly, schedules.Create)
	sc.Put("/:id", directorOnly, schedules.Update)
	sc.Delete("/:id", directorOnly, schedules.Delete)

	enrollments := enrollmentController.NewEnrollmentController(db)
	en := r.Group("/enrollments")
	en.Get("/", enrollments.List)
	en.Post("/", directorOnly, enrollments.Enroll)
	en.Post("/bulk", directorOnly, enrollments.BulkEnroll)
	en.Patch("/:id/deactivate", directorOnly, enrollments.Deactivate)
}
