package dashboard

import (
	"database/sql"

	"github.com/OkoroJesse/result-manager-sub000/app/models"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, db *sql.DB) {
	admin := auth.RequireRole(models.RoleAdmin)

	app.Get("/api/dashboard/stats", auth.AuthMiddleware, admin, func(c *fiber.Ctx) error {
		return GetStats(c, db)
	})
}
