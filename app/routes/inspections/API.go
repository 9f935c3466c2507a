package inspections

import (
	"errors"

	"mvpi-scorecard/app/access"
	"mvpi-scorecard/app/config"
	"mvpi-scorecard/app/database"
	"mvpi-scorecard/app/models"
	"mvpi-scorecard/app/routes/auth"
	"mvpi-scorecard/app/scoring"

	"github.com/gofiber/fiber/v2"
)

// InspectionResponse pairs a stored report with its weighted health score.
// The health score is recomputed on every read so weighting changes apply
// retroactively; the legacy overall score stays as stamped at save time.
type InspectionResponse struct {
	*models.Inspection
	HealthScore int `json:"health_score"`
}

func loadWeightTable() (*scoring.WeightTable, error) {
	weightings, err := database.GetAllWeightings(config.GetStore())
	if err != nil {
		return nil, err
	}
	return scoring.NewWeightTable(weightings), nil
}

func toResponse(table *scoring.WeightTable, inspection *models.Inspection) InspectionResponse {
	return InspectionResponse{
		Inspection:  inspection,
		HealthScore: table.VehicleHealthScore(inspection.Vehicle.VehicleType, inspection.Items),
	}
}

func GetInspectionsAPI(c *fiber.Ctx) error {
	all, err := database.GetAllInspections(config.GetStore())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch inspections"})
	}

	visible := access.VisibleInspections(all, auth.ActorRole(c), auth.ActorEmail(c))

	table, err := loadWeightTable()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load weighting configuration"})
	}

	responses := make([]InspectionResponse, 0, len(visible))
	for _, inspection := range visible {
		responses = append(responses, toResponse(table, inspection))
	}

	return c.JSON(fiber.Map{
		"inspections": responses,
		"count":       len(responses),
	})
}

// visibleByID loads one report and applies the same visibility rule as the
// list endpoint. A report the actor may not see reads as not found.
func visibleByID(c *fiber.Ctx, inspectionID string) (*models.Inspection, error) {
	inspection, err := database.GetInspectionByID(config.GetStore(), inspectionID)
	if err != nil {
		return nil, err
	}
	visible := access.VisibleInspections([]*models.Inspection{inspection}, auth.ActorRole(c), auth.ActorEmail(c))
	if len(visible) == 0 {
		return nil, database.ErrNotFound
	}
	return inspection, nil
}

func GetInspectionAPI(c *fiber.Ctx) error {
	inspection, err := visibleByID(c, c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Inspection not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch inspection"})
	}

	table, err := loadWeightTable()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load weighting configuration"})
	}

	return c.JSON(toResponse(table, inspection))
}

func CreateInspectionAPI(c *fiber.Ctx) error {
	if !access.CanCreateInspection(auth.ActorRole(c)) {
		return c.Status(403).JSON(fiber.Map{"error": "Not allowed to create inspections"})
	}

	var inspection models.Inspection
	if err := c.BodyParser(&inspection); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if inspection.CustomerName == "" || inspection.CustomerEmail == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Customer name and email are required"})
	}
	if inspection.Vehicle.Make == "" || inspection.Vehicle.Model == "" || inspection.Vehicle.Year == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Vehicle make, model, and year are required"})
	}
	if !inspection.Vehicle.VehicleType.IsValid() {
		return c.Status(400).JSON(fiber.Map{"error": "Vehicle type must be ice or ev"})
	}
	for _, item := range inspection.Items {
		if !item.Condition.IsValid() {
			return c.Status(400).JSON(fiber.Map{"error": "Unknown condition: " + string(item.Condition)})
		}
	}

	inspection.CreatedBy = auth.ActorID(c)

	if err := database.CreateInspection(config.GetStore(), &inspection); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to create inspection",
			"details": err.Error(),
		})
	}

	table, err := loadWeightTable()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load weighting configuration"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":    "Inspection created successfully",
		"inspection": toResponse(table, &inspection),
	})
}

func UpdateInspectionAPI(c *fiber.Ctx) error {
	if !access.CanEditInspection(auth.ActorRole(c)) {
		return c.Status(403).JSON(fiber.Map{"error": "Not allowed to edit inspections"})
	}

	var updates models.InspectionUpdate
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if updates.Status != nil && !updates.Status.IsValid() {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown status: " + string(*updates.Status)})
	}
	if updates.Items != nil {
		for _, item := range *updates.Items {
			if !item.Condition.IsValid() {
				return c.Status(400).JSON(fiber.Map{"error": "Unknown condition: " + string(item.Condition)})
			}
		}
	}

	inspectionID := c.Params("id")
	if err := database.UpdateInspection(config.GetStore(), inspectionID, updates); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Inspection not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update inspection"})
	}

	return c.JSON(fiber.Map{"message": "Inspection updated successfully"})
}

func DeleteInspectionAPI(c *fiber.Ctx) error {
	if !access.CanDeleteInspection(auth.ActorRole(c)) {
		return c.Status(403).JSON(fiber.Map{"error": "Not allowed to delete inspections"})
	}

	err := database.DeleteInspection(config.GetStore(), c.Params("id"))
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete inspection"})
	}

	// Missing ids still answer success so idempotent deletes keep working
	return c.JSON(fiber.Map{"message": "Inspection deleted successfully"})
}
