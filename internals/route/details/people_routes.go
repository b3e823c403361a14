// file: internals/route/details/people_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"armonia_backend/internals/constants"
	profileController "armonia_backend/internals/features/people/profiles/controller"
	authMiddleware "armonia_backend/internals/middlewares/auth"
)

// PeopleRoutes: gestión de personas de la academia. Las escrituras son del
// director; los profesores solo leen.
func PeopleRoutes(r fiber.Router, db *gorm.DB) {
	directorOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorDirector("la gestión de personas"),
		constants.RoleDirector,
	)

	mount := func(path string, ctrl *profileController.ProfileController) {
		g := r.Group(path)
		g.Get("/", ctrl.List)
		g.Get("/:id", ctrl.GetByID)
		g.Get("/:id/photo", ctrl.GetPhoto)
		g.Post("/", directorOnly, ctrl.Create)
		g.Put("/:id", directorOnly, ctrl.Update)
		g.Delete("/:id", directorOnly, ctrl.Delete)
		g.Post("/:id/photo", directorOnly, ctrl.UploadPhoto)
	}

	mount("/students", profileController.NewStudentController(db))
	mount("/professors", profileController.NewProfessorController(db))
	mount("/guardians", profileController.NewGuardianController(db))

	gs := profileController.NewGuardianStudentController(db)
	r.Post("/guardian-students", directorOnly, gs.Link)
	r.Delete("/guardian-students/:id", directorOnly, gs.Unlink)
}
