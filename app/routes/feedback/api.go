package feedback

import (
	"errors"

	"mvpi-scorecard/app/access"
	"mvpi-scorecard/app/config"
	"mvpi-scorecard/app/database"
	"mvpi-scorecard/app/models"
	"mvpi-scorecard/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SubmitFeedbackAPI accepts feedback from any authenticated role.
func SubmitFeedbackAPI(c *fiber.Ctx) error {
	type SubmitRequest struct {
		Message string   `json:"message"`
		Topics  []string `json:"topics"`
	}

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Message == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Message is required"})
	}

	entry := &models.Feedback{
		Message:     req.Message,
		Topics:      req.Topics,
		SubmittedBy: auth.ActorID(c),
	}

	if err := database.CreateFeedback(config.GetStore(), entry); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to submit feedback"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":  "Feedback submitted successfully",
		"feedback": entry,
	})
}

func GetFeedbackAPI(c *fiber.Ctx) error {
	if !access.CanManageFeedback(auth.ActorRole(c)) {
		return c.Status(403).JSON(fiber.Map{"error": "Only admins can view feedback"})
	}

	entries, err := database.GetAllFeedback(config.GetStore())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch feedback"})
	}

	return c.JSON(fiber.Map{
		"feedback": entries,
		"count":    len(entries),
	})
}

func MarkReviewedAPI(c *fiber.Ctx) error {
	if !access.CanManageFeedback(auth.ActorRole(c)) {
		return c.Status(403).JSON(fiber.Map{"error": "Only admins can review feedback"})
	}

	err := database.MarkFeedbackReviewed(config.GetStore(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Feedback not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update feedback"})
	}

	return c.JSON(fiber.Map{"message": "Feedback marked as reviewed"})
}

func DeleteFeedbackAPI(c *fiber.Ctx) error {
	if !access.CanManageFeedback(auth.ActorRole(c)) {
		return c.Status(403).JSON(fiber.Map{"error": "Only admins can delete feedback"})
	}

	err := database.DeleteFeedback(config.GetStore(), c.Params("id"))
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete feedback"})
	}

	return c.JSON(fiber.Map{"message": "Feedback deleted successfully"})
}
