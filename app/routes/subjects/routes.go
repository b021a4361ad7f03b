package subjects

import (
	"database/sql"

	"github.com/OkoroJesse/result-manager-sub000/app/models"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupSubjectsRoutes(app *fiber.App, db *sql.DB) {
	admin := auth.RequireRole(models.RoleAdmin)

	app.Get("/api/subjects", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return GetSubjects(c, db)
	})
	app.Get("/api/subjects/:id", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return GetSubject(c, db)
	})
	app.Post("/api/subjects", auth.AuthMiddleware, admin, func(c *fiber.Ctx) error {
		return CreateSubject(c, db)
	})
	app.Put("/api/subjects/:id", auth.AuthMiddleware, admin, func(c *fiber.Ctx) error {
		return UpdateSubject(c, db)
	})
	app.Post("/api/subjects/map", auth.AuthMiddleware, admin, func(c *fiber.Ctx) error {
		return MapSubjectToClass(c, db)
	})
	app.Delete("/api/subjects/map", auth.AuthMiddleware, admin, func(c *fiber.Ctx) error {
		return UnmapSubjectFromClass(c, db)
	})
}
