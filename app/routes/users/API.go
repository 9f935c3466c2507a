package users

import (
	"errors"

	"mvpi-scorecard/app/access"
	"mvpi-scorecard/app/config"
	"mvpi-scorecard/app/database"
	"mvpi-scorecard/app/models"
	"mvpi-scorecard/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func GetUsersAPI(c *fiber.Ctx) error {
	users, err := database.GetAllUsers(config.GetStore())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	return c.JSON(fiber.Map{
		"users": users,
		"count": len(users),
	})
}

func CreateUserAPI(c *fiber.Ctx) error {
	type CreateUserRequest struct {
		Name     string      `json:"name"`
		Email    string      `json:"email"`
		Password string      `json:"password"`
		Role     models.Role `json:"role"`
	}

	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name, email, and password are required"})
	}
	if !req.Role.IsValid() {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown role: " + string(req.Role)})
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     req.Role,
	}

	if err := database.CreateUser(config.GetStore(), user); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to create user",
			"details": err.Error(),
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    user,
	})
}

func UpdateUserAPI(c *fiber.Ctx) error {
	type UpdateUserRequest struct {
		Name  string      `json:"name"`
		Email string      `json:"email"`
		Role  models.Role `json:"role"`
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if !req.Role.IsValid() {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown role: " + string(req.Role)})
	}

	user, err := database.GetUserByID(config.GetStore(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Storage error"})
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Role = req.Role

	if err := database.UpdateUser(config.GetStore(), user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(fiber.Map{
		"message": "User updated successfully",
		"user":    user,
	})
}

// DeleteUserAPI removes an account. Inspection reports created by the
// account are not deleted; their createdBy reference is repaired with the
// removed marker as part of the same workflow.
func DeleteUserAPI(c *fiber.Ctx) error {
	userID := c.Params("id")

	if userID == auth.ActorID(c) {
		return c.Status(400).JSON(fiber.Map{"error": "Cannot delete your own account"})
	}

	err := database.DeleteUser(config.GetStore(), userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete user"})
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

// RequireUserManagement gates the whole group on the admin-only predicate.
func RequireUserManagement(c *fiber.Ctx) error {
	if !access.CanManageUsers(auth.ActorRole(c)) {
		return c.Status(403).JSON(fiber.Map{"error": "Only admins can manage users"})
	}
	return c.Next()
}
