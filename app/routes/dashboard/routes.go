package dashboard

import (
	"math"

	"mvpi-scorecard/app/access"
	"mvpi-scorecard/app/config"
	"mvpi-scorecard/app/database"
	"mvpi-scorecard/app/models"
	"mvpi-scorecard/app/routes/auth"
	"mvpi-scorecard/app/scoring"
	"mvpi-scorecard/app/services"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, tracker *services.VisitorTracker) {
	app.Get("/api/dashboard", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return getDashboardAPI(c, tracker)
	})
}

// getDashboardAPI summarizes the caller's visible reports: counts by status
// and the fleet-wide average health score.
func getDashboardAPI(c *fiber.Ctx, tracker *services.VisitorTracker) error {
	store := config.GetStore()

	all, err := database.GetAllInspections(store)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch inspections"})
	}
	visible := access.VisibleInspections(all, auth.ActorRole(c), auth.ActorEmail(c))

	weightings, err := database.GetAllWeightings(store)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load weighting configuration"})
	}
	table := scoring.NewWeightTable(weightings)

	statusCounts := map[models.ReportStatus]int{}
	scoreTotal := 0
	for _, inspection := range visible {
		statusCounts[inspection.Status]++
		scoreTotal += table.VehicleHealthScore(inspection.Vehicle.VehicleType, inspection.Items)
	}

	averageScore := 0
	if len(visible) > 0 {
		averageScore = int(math.Round(float64(scoreTotal) / float64(len(visible))))
	}

	visits := tracker.Record()

	return c.JSON(fiber.Map{
		"inspection_count":     len(visible),
		"status_counts":        statusCounts,
		"average_health_score": averageScore,
		"visits":               visits,
	})
}
