// file: internals/route/details/academy_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academyController "armonia_backend/internals/features/academies/academies/controller"
)

// AcademyRoutes: gestión de tenants, solo super_admin (grupo /api/o).
func AcademyRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := academyController.NewAcademyController(db)

	g := r.Group("/academies")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
