package grades

import (
	"database/sql"

	"github.com/OkoroJesse/result-manager-sub000/app/models"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupGradesRoutes(app *fiber.App, db *sql.DB) {
	admin := auth.RequireRole(models.RoleAdmin)

	app.Get("/api/grading-rules", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return GetGradingRules(c, db)
	})
	app.Put("/api/grading-rules", auth.AuthMiddleware, admin, func(c *fiber.Ctx) error {
		return ReplaceGradingRules(c, db)
	})
}
