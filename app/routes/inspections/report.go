package inspections

import (
	"errors"

	"mvpi-scorecard/app/database"

	"github.com/gofiber/fiber/v2"
)

// renderReport is the single render path behind both the report view and the
// print view; the two used to carry near-identical duplicated templates.
func renderReport(c *fiber.Ctx, print bool) error {
	inspection, err := visibleByID(c, c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Inspection not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch inspection")
	}

	table, err := loadWeightTable()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load weighting configuration")
	}

	// Group items by category for display; insertion order is preserved.
	categories := []string{}
	grouped := map[string][]fiber.Map{}
	for _, item := range inspection.Items {
		if _, seen := grouped[item.Category]; !seen {
			categories = append(categories, item.Category)
		}
		grouped[item.Category] = append(grouped[item.Category], fiber.Map{
			"Item":      item.Item,
			"Condition": string(item.Condition),
			"Notes":     item.Notes,
			"Score":     item.Score,
		})
	}

	return c.Render("inspections/report", fiber.Map{
		"Title":        "Inspection Report - MVPI Scorecard",
		"Print":        print,
		"Inspection":   inspection,
		"HealthScore":  table.VehicleHealthScore(inspection.Vehicle.VehicleType, inspection.Items),
		"OverallScore": inspection.OverallScore,
		"Categories":   categories,
		"Grouped":      grouped,
	}, "")
}

func ShowReportPage(c *fiber.Ctx) error {
	return renderReport(c, false)
}

func ShowPrintPage(c *fiber.Ctx) error {
	return renderReport(c, true)
}
