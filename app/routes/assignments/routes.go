package assignments

import (
	"database/sql"

	"github.com/OkoroJesse/result-manager-sub000/app/models"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAssignmentsRoutes(app *fiber.App, db *sql.DB) {
	admin := auth.RequireRole(models.RoleAdmin)

	app.Get("/api/assignments", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return GetAssignments(c, db)
	})
	app.Post("/api/assignments", auth.AuthMiddleware, admin, func(c *fiber.Ctx) error {
		return CreateAssignment(c, db)
	})
	app.Delete("/api/assignments/:id", auth.AuthMiddleware, admin, func(c *fiber.Ctx) error {
		return DeactivateAssignment(c, db)
	})
}
