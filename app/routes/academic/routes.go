package academic

import (
	"database/sql"

	"github.com/OkoroJesse/result-manager-sub000/app/models"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the academic session and term routes.
func RegisterRoutes(app *fiber.App, db *sql.DB) {
	admin := auth.RequireRole(models.RoleAdmin)

	// Session routes
	app.Get("/api/sessions", auth.AuthMiddleware, GetAllSessionsHandler(db))
	app.Get("/api/sessions/:id", auth.AuthMiddleware, GetSessionHandler(db))
	app.Post("/api/sessions", auth.AuthMiddleware, admin, CreateSessionHandler(db))
	app.Put("/api/sessions/:id", auth.AuthMiddleware, admin, UpdateSessionHandler(db))
	app.Put("/api/sessions/:id/activate", auth.AuthMiddleware, admin, ActivateSessionHandler(db))
	app.Get("/api/sessions/:sessionId/terms", auth.AuthMiddleware, GetTermsBySessionHandler(db))

	// Term routes
	app.Get("/api/terms/:id", auth.AuthMiddleware, GetTermHandler(db))
	app.Post("/api/terms", auth.AuthMiddleware, admin, CreateTermHandler(db))
	app.Put("/api/terms/:id", auth.AuthMiddleware, admin, UpdateTermHandler(db))
	app.Put("/api/terms/:id/activate", auth.AuthMiddleware, admin, ActivateTermHandler(db))
	app.Put("/api/terms/:id/close", auth.AuthMiddleware, admin, CloseTermHandler(db))

	// Active calendar
	app.Get("/api/academic/active", auth.AuthMiddleware, GetActiveHandler(db))
}
