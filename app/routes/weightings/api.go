package weightings

import (
	"mvpi-scorecard/app/config"
	"mvpi-scorecard/app/database"
	"mvpi-scorecard/app/models"
	"mvpi-scorecard/app/routes/auth"
	"mvpi-scorecard/app/scoring"

	"github.com/gofiber/fiber/v2"
)

func GetWeightingsAPI(c *fiber.Ctx) error {
	vehicleType := models.VehicleType(c.Query("vehicle_type"))

	var (
		rows []*models.WeightingItem
		err  error
	)
	if vehicleType != "" {
		if !vehicleType.IsValid() {
			return c.Status(400).JSON(fiber.Map{"error": "vehicle_type must be ice or ev"})
		}
		rows, err = database.GetWeightingsForType(config.GetStore(), vehicleType)
	} else {
		rows, err = database.GetAllWeightings(config.GetStore())
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch weightings"})
	}

	return c.JSON(fiber.Map{
		"weightings": rows,
		"count":      len(rows),
	})
}

// SaveWeightingsAPI replaces the weighting rows for one vehicle type. New
// weights apply to every future score computation immediately.
func SaveWeightingsAPI(c *fiber.Ctx) error {
	if auth.ActorRole(c) != models.RoleAdmin {
		return c.Status(403).JSON(fiber.Map{"error": "Only admins can edit weightings"})
	}

	type WeightInput struct {
		Section                 string `json:"section"`
		Item                    string `json:"item"`
		FailedWeight            int    `json:"failed_weight"`
		AttentionRequiredWeight int    `json:"attention_required_weight"`
	}
	type SaveRequest struct {
		VehicleType models.VehicleType `json:"vehicle_type"`
		Weights     []WeightInput      `json:"weights"`
	}

	var req SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if !req.VehicleType.IsValid() {
		return c.Status(400).JSON(fiber.Map{"error": "vehicle_type must be ice or ev"})
	}

	rows := make([]*models.WeightingItem, 0, len(req.Weights))
	for _, w := range req.Weights {
		if w.Section == "" || w.Item == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Every weight needs a section and item"})
		}
		// Over-100 weights are legitimate (deductions overlap unboundedly),
		// negative ones are not.
		if w.FailedWeight < 0 || w.AttentionRequiredWeight < 0 {
			return c.Status(400).JSON(fiber.Map{"error": "Weights cannot be negative"})
		}
		rows = append(rows, &models.WeightingItem{
			VehicleType:             req.VehicleType,
			Section:                 w.Section,
			Item:                    w.Item,
			FailedWeight:            w.FailedWeight,
			AttentionRequiredWeight: w.AttentionRequiredWeight,
		})
	}

	if err := database.SaveWeightingsForType(config.GetStore(), req.VehicleType, rows); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save weightings"})
	}

	return c.JSON(fiber.Map{
		"message": "Weightings saved successfully",
		"count":   len(rows),
	})
}

func ResetWeightingsAPI(c *fiber.Ctx) error {
	if auth.ActorRole(c) != models.RoleAdmin {
		return c.Status(403).JSON(fiber.Map{"error": "Only admins can reset weightings"})
	}

	if err := database.ResetWeightings(config.GetStore()); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to reset weightings"})
	}

	return c.JSON(fiber.Map{"message": "Weightings reset to catalog defaults"})
}

// GetCatalogAPI serves the static inspection catalog used to build
// inspection forms and the weighting table.
func GetCatalogAPI(c *fiber.Ctx) error {
	vehicleType := models.VehicleType(c.Query("vehicle_type", string(models.VehicleTypeICE)))
	if !vehicleType.IsValid() {
		return c.Status(400).JSON(fiber.Map{"error": "vehicle_type must be ice or ev"})
	}

	return c.JSON(fiber.Map{
		"vehicle_type": vehicleType,
		"catalog":      scoring.Catalog(vehicleType),
	})
}
