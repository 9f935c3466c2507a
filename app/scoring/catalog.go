package scoring

import "mvpi-scorecard/app/models"

// CatalogSection is one category of the static inspection catalog with its
// checkpoint names.
type CatalogSection struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Categories common to both vehicle types.
var sharedCatalog = []CatalogSection{
	{Category: "Brakes", Items: []string{
		"Driver Front", "Passenger Front", "Driver Rear", "Passenger Rear",
		"Parking Brake", "Brake Fluid",
	}},
	{Category: "Tires", Items: []string{
		"Driver Front", "Passenger Front", "Driver Rear", "Passenger Rear",
		"Spare Tire", "Tread Depth", "Tire Pressure",
	}},
	{Category: "Lights", Items: []string{
		"Headlights", "Brake Lights", "Turn Signals", "Reverse Lights",
		"Hazard Lights",
	}},
	{Category: "Suspension & Steering", Items: []string{
		"Shocks & Struts", "Ball Joints", "Control Arms", "Tie Rods",
		"Power Steering",
	}},
	{Category: "Wipers & Glass", Items: []string{
		"Wiper Blades", "Washer Fluid", "Windshield Condition",
	}},
	{Category: "Battery & Electrical", Items: []string{
		"12V Battery", "Battery Terminals", "Horn", "Cabin Electronics",
	}},
}

var iceCatalog = []CatalogSection{
	{Category: "Engine", Items: []string{
		"Engine Oil", "Oil Filter", "Air Filter", "Coolant Level",
		"Drive Belts", "Hoses", "Spark Plugs",
	}},
	{Category: "Transmission", Items: []string{
		"Transmission Fluid", "Shift Quality",
	}},
	{Category: "Exhaust", Items: []string{
		"Muffler", "Catalytic Converter", "Exhaust Pipes",
	}},
}

var evCatalog = []CatalogSection{
	{Category: "High-Voltage System", Items: []string{
		"Traction Battery Health", "High-Voltage Cables", "Charging Port",
		"Onboard Charger",
	}},
	{Category: "Thermal Management", Items: []string{
		"Battery Coolant", "Coolant Pump",
	}},
	{Category: "Drive Unit", Items: []string{
		"Drive Motor", "Reduction Gear Oil", "Regenerative Braking",
	}},
}

// Catalog returns the static inspection catalog for a vehicle type. Unknown
// types get the shared categories only.
func Catalog(vehicleType models.VehicleType) []CatalogSection {
	sections := make([]CatalogSection, 0, len(sharedCatalog)+3)
	sections = append(sections, sharedCatalog...)
	switch vehicleType {
	case models.VehicleTypeICE:
		sections = append(sections, iceCatalog...)
	case models.VehicleTypeEV:
		sections = append(sections, evCatalog...)
	}
	return sections
}

// DefaultWeightings generates one weighting row per catalog entry for both
// vehicle types, seeded with the fallback deduction weights.
func DefaultWeightings() []*models.WeightingItem {
	var items []*models.WeightingItem
	for _, vt := range []models.VehicleType{models.VehicleTypeICE, models.VehicleTypeEV} {
		for _, section := range Catalog(vt) {
			for _, name := range section.Items {
				items = append(items, &models.WeightingItem{
					VehicleType:             vt,
					Section:                 section.Category,
					Item:                    name,
					FailedWeight:            DefaultFailedWeight,
					AttentionRequiredWeight: DefaultAttentionRequiredWeight,
				})
			}
		}
	}
	return items
}
