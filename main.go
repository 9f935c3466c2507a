package main

import (
	"encoding/json"
	"log"
	"os"
	"strings"

	"mvpi-scorecard/app/config"
	"mvpi-scorecard/app/database"
	"mvpi-scorecard/app/routes/auth"
	"mvpi-scorecard/app/routes/dashboard"
	"mvpi-scorecard/app/routes/feedback"
	"mvpi-scorecard/app/routes/inspections"
	"mvpi-scorecard/app/routes/users"
	"mvpi-scorecard/app/routes/weightings"
	"mvpi-scorecard/app/services"
	"mvpi-scorecard/app/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler answers API requests with JSON and page requests with
// rendered error templates.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if strings.HasPrefix(c.Path(), "/api") || strings.HasPrefix(c.Path(), "/auth") {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title": "Page Not Found - MVPI Scorecard",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - MVPI Scorecard",
			"ErrorCode":    code,
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Initialize storage
	config.InitStorage()
	store := config.GetStore()

	// Promote any data left under the misspelled legacy slot keys
	if err := storage.MigrateLegacyKeys(store); err != nil {
		log.Fatal("Failed to migrate storage keys:", err)
	}

	// Seed the weighting table from the inspection catalog on first run
	if err := database.EnsureDefaultWeightings(store); err != nil {
		log.Fatal("Failed to seed weighting configuration:", err)
	}

	// Visit tracking, one instance for the whole process
	tracker := services.NewVisitorTracker(store)

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app, tracker)
	inspections.SetupInspectionsRoutes(app)
	weightings.SetupWeightingsRoutes(app)
	users.SetupUsersRoutes(app)
	feedback.SetupFeedbackRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
