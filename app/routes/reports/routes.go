package reports

import (
	"database/sql"

	"github.com/OkoroJesse/result-manager-sub000/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupReportsRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/reports/student/:studentId", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return GetStudentReport(c, db)
	})
	app.Get("/api/reports/class/:classId", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return GetClassBroadsheet(c, db)
	})
	app.Get("/reports/student/:studentId/card", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return RenderReportCard(c, db)
	})
}
