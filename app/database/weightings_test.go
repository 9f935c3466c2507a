package database

import (
	"testing"

	"mvpi-scorecard/app/models"
	"mvpi-scorecard/app/storage"
)

func TestEnsureDefaultWeightings(t *testing.T) {
	store := storage.NewMemoryStore()

	if err := EnsureDefaultWeightings(store); err != nil {
		t.Fatalf("EnsureDefaultWeightings: %v", err)
	}
	seeded, err := GetAllWeightings(store)
	if err != nil {
		t.Fatal(err)
	}
	if len(seeded) == 0 {
		t.Fatal("fresh store was not seeded with catalog defaults")
	}

	// An admin emptying the table is a written state; seeding must not rerun
	if err := storage.SaveCollection(store, storage.KeyWeightings, []*models.WeightingItem{}); err != nil {
		t.Fatal(err)
	}
	if err := EnsureDefaultWeightings(store); err != nil {
		t.Fatal(err)
	}
	after, err := GetAllWeightings(store)
	if err != nil {
		t.Fatal(err)
	}
	if len(after) != 0 {
		t.Errorf("seeding reran over a written slot, got %d rows", len(after))
	}
}

func TestSaveWeightingsForType(t *testing.T) {
	store := storage.NewMemoryStore()
	if err := EnsureDefaultWeightings(store); err != nil {
		t.Fatal(err)
	}

	evBefore, err := GetWeightingsForType(store, models.VehicleTypeEV)
	if err != nil {
		t.Fatal(err)
	}

	rows := []*models.WeightingItem{
		{Section: "Brakes", Item: "Driver Front", FailedWeight: 40, AttentionRequiredWeight: 10},
	}
	if err := SaveWeightingsForType(store, models.VehicleTypeICE, rows); err != nil {
		t.Fatalf("SaveWeightingsForType: %v", err)
	}

	ice, err := GetWeightingsForType(store, models.VehicleTypeICE)
	if err != nil {
		t.Fatal(err)
	}
	if len(ice) != 1 || ice[0].FailedWeight != 40 {
		t.Errorf("ICE rows = %d, want the single replacement row", len(ice))
	}
	if ice[0].VehicleType != models.VehicleTypeICE {
		t.Errorf("saved row vehicle type = %s, want ice", ice[0].VehicleType)
	}

	evAfter, err := GetWeightingsForType(store, models.VehicleTypeEV)
	if err != nil {
		t.Fatal(err)
	}
	if len(evAfter) != len(evBefore) {
		t.Errorf("EV rows changed by ICE save: %d != %d", len(evAfter), len(evBefore))
	}
}

func TestResetWeightings(t *testing.T) {
	store := storage.NewMemoryStore()
	if err := SaveWeightingsForType(store, models.VehicleTypeICE, []*models.WeightingItem{
		{Section: "Brakes", Item: "Driver Front", FailedWeight: 99},
	}); err != nil {
		t.Fatal(err)
	}

	if err := ResetWeightings(store); err != nil {
		t.Fatalf("ResetWeightings: %v", err)
	}

	rows, err := GetAllWeightings(store)
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range rows {
		if row.FailedWeight == 99 {
			t.Fatal("custom row survived reset")
		}
	}
	if len(rows) == 0 {
		t.Fatal("reset left the weighting table empty")
	}
}
