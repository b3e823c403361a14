// file: internals/route/details/guardian_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"armonia_backend/internals/constants"
	crController "armonia_backend/internals/features/academics/course_registrations/controller"
	invoiceController "armonia_backend/internals/features/billing/invoices/controller"
	paymentController "armonia_backend/internals/features/billing/payments/controller"
	profileController "armonia_backend/internals/features/people/profiles/controller"
	authMiddleware "armonia_backend/internals/middlewares/auth"
)

// GuardianRoutes: lo que un acudiente ve de sus hijos y sus cobros.
func GuardianRoutes(r fiber.Router, db *gorm.DB) {
	guardianOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorGuardian("esta sección"),
		constants.GuardianOnly...,
	)

	gs := profileController.NewGuardianStudentController(db)
	cr := crController.NewCourseRegistrationController(db)
	inv := invoiceController.NewInvoiceController(db)
	pay := paymentController.NewPaymentController(db)

	g := r.Group("", guardianOnly)
	g.Get("/my-children", gs.MyChildren)
	g.Get("/my-children/:studentId/courses", cr.ListForMyChild)
	g.Get("/my-invoices", inv.ListMine)
	g.Post("/invoices/:id/pay", pay.CreatePayment)
}
