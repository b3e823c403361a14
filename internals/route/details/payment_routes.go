// file: internals/route/details/payment_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "armonia_backend/internals/features/billing/payments/controller"
)

// PaymentWebhookRoutes: notificación de Midtrans, sin auth (está en la lista
// de paths que el middleware de auth salta).
func PaymentWebhookRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)
	app.Post("/api/payments/notification", ctrl.HandleNotification)
}
