// file: internals/route/details/academic_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"armonia_backend/internals/constants"
	crController "armonia_backend/internals/features/academics/course_registrations/controller"
	periodController "armonia_backend/internals/features/academics/periods/controller"
	songController "armonia_backend/internals/features/academics/songs/controller"
	subjectController "armonia_backend/internals/features/academics/subjects/controller"
	authMiddleware "armonia_backend/internals/middlewares/auth"
)

// AcademicRoutes: materias, repertorio, periodos y matrículas.
func AcademicRoutes(r fiber.Router, db *gorm.DB) {
	directorOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorDirector("la configuración académica"),
		constants.RoleDirector,
	)

	subjects := subjectController.NewSubjectController(db)
	sg := r.Group("/subjects")
	sg.Get("/", subjects.List)
	sg.Get("/:id", subjects.GetByID)
	sg.Post("/", directorOnly, subjects.Create)
	sg.Put("/:id", directorOnly, subjects.Update)
	sg.Delete("/:id", directorOnly, subjects.Delete)

	songs := songController.NewSongController(db)
	so := r.Group("/songs")
	so.Get("/", songs.List)
	so.Get("/:id", songs.GetByID)
	so.Post("/", songs.Create) // los profesores también cargan repertorio
	so.Put("/:id", songs.Update)
	so.Delete("/:id", directorOnly, songs.Delete)

	periods := periodController.NewPeriodController(db)
	pe := r.Group("/periods")
	pe.Get("/", periods.List)
	pe.Get("/:id", periods.GetByID)
	pe.Post("/", directorOnly, periods.Create)
	pe.Put("/:id", directorOnly, periods.Update)
	pe.Delete("/:id", directorOnly, periods.Delete)
	pe.Post("/:id/dates", directorOnly, periods.AddDates)
	pe.Delete("/:id/dates/:dateId", directorOnly, periods.DeleteDate)

	regs := crController.NewCourseRegistrationController(db)
	cr := r.Group("/course-registrations")
	cr.Get("/", regs.List)
	cr.Post("/", directorOnly, regs.Create)
	cr.Put("/:id", directorOnly, regs.Update)
	cr.Delete("/:id", directorOnly, regs.Delete)
}
