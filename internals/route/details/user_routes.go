// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "armonia_backend/internals/features/users/auth/controller"
)

// UserRoutes: endpoints de la propia cuenta, cualquier rol logueado.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	r.Get("/me", ctrl.Me)
}
