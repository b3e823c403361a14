// file: internals/route/details/billing_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"armonia_backend/internals/constants"
	contractController "armonia_backend/internals/features/billing/contracts/controller"
	invoiceController "armonia_backend/internals/features/billing/invoices/controller"
	authMiddleware "armonia_backend/internals/middlewares/auth"
)

// BillingRoutes: contratos y facturas, solo director.
func BillingRoutes(r fiber.Router, db *gorm.DB) {
	directorOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorDirector("la facturación"),
		constants.RoleDirector,
	)

	contracts := contractController.NewContractController(db)
	co := r.Group("/contracts", directorOnly)
	co.Get("/", contracts.List)
	co.Get("/:id", contracts.GetByID)
	co.Post("/", contracts.Create)
	co.Delete("/:id", contracts.Delete)

	invoices := invoiceController.NewInvoiceController(db)
	in := r.Group("/invoices", directorOnly)
	in.Get("/", invoices.List)
	in.Patch("/:id/pay", invoices.MarkPaid)
}
