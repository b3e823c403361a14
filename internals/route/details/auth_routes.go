// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "armonia_backend/internals/features/users/auth/controller"
	middlewares "armonia_backend/internals/middlewares"
	authMiddleware "armonia_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/refresh-token", ctrl.RefreshToken)

	secured := auth.Group("", authMiddleware.AuthMiddleware(db))
	secured.Post("/logout", ctrl.Logout)
	secured.Post("/change-password", ctrl.ChangePassword)
}
