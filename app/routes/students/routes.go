package students

import (
	"database/sql"

	"github.com/OkoroJesse/result-manager-sub000/app/models"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentsRoutes(app *fiber.App, db *sql.DB) {
	admin := auth.RequireRole(models.RoleAdmin)

	app.Get("/api/students", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return GetStudents(c, db)
	})
	app.Get("/api/students/:id", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return GetStudent(c, db)
	})
	app.Post("/api/students", auth.AuthMiddleware, admin, func(c *fiber.Ctx) error {
		return CreateStudent(c, db)
	})
	app.Put("/api/students/:id", auth.AuthMiddleware, admin, func(c *fiber.Ctx) error {
		return UpdateStudent(c, db)
	})
	app.Delete("/api/students/:id", auth.AuthMiddleware, admin, func(c *fiber.Ctx) error {
		return DeleteStudent(c, db)
	})
}
