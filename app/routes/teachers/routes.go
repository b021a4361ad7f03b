package teachers

import (
	"database/sql"

	"github.com/OkoroJesse/result-manager-sub000/app/models"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupTeachersRoutes(app *fiber.App, db *sql.DB) {
	admin := auth.RequireRole(models.RoleAdmin)

	app.Get("/api/teachers", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return GetTeachers(c, db)
	})
	app.Post("/api/teachers", auth.AuthMiddleware, admin, func(c *fiber.Ctx) error {
		return CreateTeacher(c, db)
	})
	app.Delete("/api/teachers/:id", auth.AuthMiddleware, admin, func(c *fiber.Ctx) error {
		return DeactivateTeacher(c, db)
	})
}
