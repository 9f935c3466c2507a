package feedback

import (
	"mvpi-scorecard/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupFeedbackRoutes(app *fiber.App) {
	api := app.Group("/api/feedback", auth.AuthMiddleware)
	api.Post("/", SubmitFeedbackAPI)
	api.Get("/", GetFeedbackAPI)
	api.Put("/:id/reviewed", MarkReviewedAPI)
	api.Delete("/:id", DeleteFeedbackAPI)
}
