package database

import (
	"log"

	"mvpi-scorecard/app/models"
	"mvpi-scorecard/app/scoring"
	"mvpi-scorecard/app/storage"
)

func GetAllWeightings(s storage.Store) ([]*models.WeightingItem, error) {
	return storage.LoadCollection[*models.WeightingItem](s, storage.KeyWeightings)
}

func GetWeightingsForType(s storage.Store, vehicleType models.VehicleType) ([]*models.WeightingItem, error) {
	weightings, err := GetAllWeightings(s)
	if err != nil {
		return nil, err
	}
	var filtered []*models.WeightingItem
	for _, w := range weightings {
		if w.VehicleType == vehicleType {
			filtered = append(filtered, w)
		}
	}
	return filtered, nil
}

// SaveWeightingsForType replaces every row of one vehicle type with the
// given rows. Rows of the other vehicle type are untouched. New weights
// apply to all future score computations; stored overall scores are never
// re-stamped.
func SaveWeightingsForType(s storage.Store, vehicleType models.VehicleType, rows []*models.WeightingItem) error {
	weightings, err := GetAllWeightings(s)
	if err != nil {
		return err
	}
	var kept []*models.WeightingItem
	for _, w := range weightings {
		if w.VehicleType != vehicleType {
			kept = append(kept, w)
		}
	}
	for _, row := range rows {
		row.VehicleType = vehicleType
		kept = append(kept, row)
	}
	return storage.SaveCollection(s, storage.KeyWeightings, kept)
}

// EnsureDefaultWeightings seeds the weighting table from the inspection
// catalog when the slot has never been written. Run at startup.
func EnsureDefaultWeightings(s storage.Store) error {
	_, ok, err := s.Get(storage.KeyWeightings)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	log.Println("Seeding default weighting configuration")
	return storage.SaveCollection(s, storage.KeyWeightings, scoring.DefaultWeightings())
}

// ResetWeightings discards every configured row and regenerates the catalog
// defaults.
func ResetWeightings(s storage.Store) error {
	return storage.SaveCollection(s, storage.KeyWeightings, scoring.DefaultWeightings())
}
