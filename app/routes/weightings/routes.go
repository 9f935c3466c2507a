package weightings

import (
	"mvpi-scorecard/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupWeightingsRoutes(app *fiber.App) {
	app.Get("/api/catalog", auth.AuthMiddleware, GetCatalogAPI)

	api := app.Group("/api/weightings", auth.AuthMiddleware)
	api.Get("/", GetWeightingsAPI)
	api.Put("/", SaveWeightingsAPI)
	api.Post("/reset", ResetWeightingsAPI)
}
