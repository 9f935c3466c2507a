package inspections

import (
	"mvpi-scorecard/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupInspectionsRoutes(app *fiber.App) {
	api := app.Group("/api/inspections", auth.AuthMiddleware)
	api.Get("/", GetInspectionsAPI)
	api.Get("/:id", GetInspectionAPI)
	api.Post("/", CreateInspectionAPI)
	api.Put("/:id", UpdateInspectionAPI)
	api.Delete("/:id", DeleteInspectionAPI)

	pages := app.Group("/inspections", auth.AuthMiddleware)
	pages.Get("/:id/report", ShowReportPage)
	pages.Get("/:id/print", ShowPrintPage)
}
