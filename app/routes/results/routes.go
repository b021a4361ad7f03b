package results

import (
	"database/sql"

	"github.com/OkoroJesse/result-manager-sub000/app/models"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupResultsRoutes(app *fiber.App, db *sql.DB) {
	admin := auth.RequireRole(models.RoleAdmin)

	app.Get("/api/results", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return GetResults(c, db)
	})
	app.Get("/api/results/student/:studentId", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return GetStudentResults(c, db)
	})
	app.Post("/api/results/draft", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return SaveDraftResult(c, db)
	})
	app.Post("/api/results/submit", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return SubmitResults(c, db)
	})
	app.Post("/api/results/approve", auth.AuthMiddleware, admin, func(c *fiber.Ctx) error {
		return ApproveResults(c, db)
	})
	app.Post("/api/results/reject", auth.AuthMiddleware, admin, func(c *fiber.Ctx) error {
		return RejectResults(c, db)
	})
}
