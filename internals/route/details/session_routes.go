// file: internals/route/details/session_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	badgeController "armonia_backend/internals/features/sessions/badges/controller"
	sessionController "armonia_backend/internals/features/sessions/class_sessions/controller"
	evaluationController "armonia_backend/internals/features/sessions/evaluations/controller"
)

// SessionRoutes: registro de sesiones, evaluaciones de canciones e insignias.
// Director y profesores comparten estas operaciones.
func SessionRoutes(r fiber.Router, db *gorm.DB) {
	sessions := sessionController.NewClassSessionController(db)
	cs := r.Group("/class-sessions")
	cs.Get("/", sessions.List)
	cs.Post("/", sessions.Create)
	cs.Put("/:id", sessions.Update)
	cs.Delete("/:id", sessions.Delete)

	evaluations := evaluationController.NewSongEvaluationController(db)
	ev := r.Group("/song-evaluations")
	ev.Get("/", evaluations.List)
	ev.Post("/", evaluations.Create)
	ev.Put("/:id", evaluations.Update)
	ev.Delete("/:id", evaluations.Delete)

	badges := badgeController.NewBadgeController(db)
	bd := r.Group("/badges")
	bd.Get("/", badges.List)
	bd.Post("/", badges.Create)
	bd.Put("/:id", badges.Update)
	bd.Delete("/:id", badges.Delete)
	bd.Post("/award", badges.Award)

	r.Get("/students/:studentId/badges", badges.ListForStudent)
}
