package classes

import (
	"database/sql"

	"github.com/OkoroJesse/result-manager-sub000/app/models"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupClassesRoutes(app *fiber.App, db *sql.DB) {
	admin := auth.RequireRole(models.RoleAdmin)

	app.Get("/api/classes", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return GetClasses(c, db)
	})
	app.Get("/api/classes/:id", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return GetClass(c, db)
	})
	app.Get("/api/classes/:id/students", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return GetClassStudents(c, db)
	})
	app.Get("/api/classes/:id/subjects", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return GetClassSubjects(c, db)
	})
	app.Post("/api/classes", auth.AuthMiddleware, admin, func(c *fiber.Ctx) error {
		return CreateClass(c, db)
	})
	app.Put("/api/classes/:id", auth.AuthMiddleware, admin, func(c *fiber.Ctx) error {
		return UpdateClass(c, db)
	})
}
