package main

import (
	"encoding/json"
	"log"
	"time"

	"github.com/OkoroJesse/result-manager-sub000/app/config"
	"github.com/OkoroJesse/result-manager-sub000/app/database"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/academic"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/assignments"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/auth"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/classes"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/dashboard"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/grades"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/reports"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/results"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/students"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/subjects"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/teachers"
	"github.com/OkoroJesse/result-manager-sub000/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler returns JSON for API requests and plain text otherwise
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	return c.Status(code).SendString(err.Error())
}

func main() {
	// Set global time zone to West Africa Time
	loc, err := time.LoadLocation("Africa/Lagos")
	if err != nil {
		log.Printf("Warning: Failed to load Africa/Lagos location, falling back to UTC+1: %v", err)
		time.Local = time.FixedZone("WAT", 1*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Initialize template engine
	engine := html.New("./views", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	db := config.GetDB()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"service": "greenfield-schools", "status": "ok"})
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app, db)

	// Setup students routes
	students.SetupStudentsRoutes(app, db)

	// Setup teachers routes
	teachers.SetupTeachersRoutes(app, db)

	// Setup classes routes
	classes.SetupClassesRoutes(app, db)

	// Setup subjects routes
	subjects.SetupSubjectsRoutes(app, db)

	// Setup academic calendar routes
	academic.RegisterRoutes(app, db)

	// Setup teacher assignment routes
	assignments.SetupAssignmentsRoutes(app, db)

	// Setup grading rule routes
	grades.SetupGradesRoutes(app, db)

	// Setup results routes
	results.SetupResultsRoutes(app, db)

	// Setup reports routes
	reports.SetupReportsRoutes(app, db)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	port := config.AppConfig.Port
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
