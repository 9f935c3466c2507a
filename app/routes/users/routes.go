package users

import (
	"mvpi-scorecard/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupUsersRoutes(app *fiber.App) {
	api := app.Group("/api/users", auth.AuthMiddleware, RequireUserManagement)
	api.Get("/", GetUsersAPI)
	api.Post("/", CreateUserAPI)
	api.Put("/:id", UpdateUserAPI)
	api.Delete("/:id", DeleteUserAPI)
}
