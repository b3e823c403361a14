// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"armonia_backend/internals/constants"
	authMiddleware "armonia_backend/internals/middlewares/auth"
	routeDetails "armonia_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	// auth (login/registro/refresh) + webhook de pagos, sin JWT
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up payment webhook...")
	routeDetails.PaymentWebhookRoutes(app, db)

	// ===================== PRIVATE (cualquier usuario logueado) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	routeDetails.UserRoutes(private, db)
	routeDetails.GuardianRoutes(private, db)

	// ===================== ACADEMY STAFF =====================
	log.Println("[INFO] Setting up STAFF group (Auth + RoleCheck)...")
	staff := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorStaff("la administración de la academia"),
			constants.StaffRoles...,
		),
	)
	routeDetails.PeopleRoutes(staff, db)
	routeDetails.AcademicRoutes(staff, db)
	routeDetails.SchedulingRoutes(staff, db)
	routeDetails.BillingRoutes(staff, db)
	routeDetails.SessionRoutes(staff, db)

	// ===================== SUPER ADMIN =====================
	log.Println("[INFO] Setting up OWNER group (super_admin)...")
	owner := app.Group("/api/o",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorSuperAdmin("la gestión de academias"),
			constants.SuperAdminOnly...,
		),
	)
	routeDetails.AcademyRoutes(owner, db)

	log.Println("✅ Routes ready")
}
