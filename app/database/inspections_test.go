package database

import (
	"errors"
	"testing"
	"time"

	"mvpi-scorecard/app/models"
	"mvpi-scorecard/app/storage"
)

func newInspection(createdBy string) *models.Inspection {
	return &models.Inspection{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CreatedBy:     createdBy,
		Vehicle: models.VehicleInfo{
			Make:        "Toyota",
			Model:       "Corolla",
			Year:        "2019",
			VIN:         "1NXBR32E85Z505904",
			Mileage:     62000,
			VehicleType: models.VehicleTypeICE,
		},
		Items: []models.InspectionItem{
			{Category: "Brakes", Item: "Driver Front", Condition: models.ConditionPass, Score: 5},
			{Category: "Brakes", Item: "Passenger Front", Condition: models.ConditionFailed, Score: 1},
		},
	}
}

func TestCreateInspectionRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()

	inspection := newInspection("tech-1")
	if err := CreateInspection(store, inspection); err != nil {
		t.Fatalf("CreateInspection: %v", err)
	}

	if inspection.ID == "" {
		t.Fatal("CreateInspection did not assign an id")
	}
	for _, item := range inspection.Items {
		if item.ID == "" {
			t.Error("inspection item missing assigned id")
		}
	}

	stored, err := GetInspectionByID(store, inspection.ID)
	if err != nil {
		t.Fatalf("GetInspectionByID: %v", err)
	}
	if !stored.CreatedAt.Equal(stored.UpdatedAt) {
		t.Errorf("fresh record has createdAt %v != updatedAt %v", stored.CreatedAt, stored.UpdatedAt)
	}
	if stored.Status != models.ReportDraft {
		t.Errorf("default status = %s, want draft", stored.Status)
	}
	// (5 + 1) / 2 = 3
	if stored.OverallScore != 3 {
		t.Errorf("denormalized overall score = %d, want 3", stored.OverallScore)
	}
}

func TestUpdateInspection(t *testing.T) {
	store := storage.NewMemoryStore()
	inspection := newInspection("tech-1")
	if err := CreateInspection(store, inspection); err != nil {
		t.Fatalf("CreateInspection: %v", err)
	}

	time.Sleep(2 * time.Millisecond)

	notes := "rear pads at 2mm"
	status := models.ReportCompleted
	err := UpdateInspection(store, inspection.ID, models.InspectionUpdate{
		Notes:  &notes,
		Status: &status,
	})
	if err != nil {
		t.Fatalf("UpdateInspection: %v", err)
	}

	updated, err := GetInspectionByID(store, inspection.ID)
	if err != nil {
		t.Fatalf("GetInspectionByID: %v", err)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Errorf("UpdatedAt %v not strictly after CreatedAt %v", updated.UpdatedAt, updated.CreatedAt)
	}
	if updated.Notes != notes || updated.Status != status {
		t.Errorf("updated fields not applied: notes=%q status=%s", updated.Notes, updated.Status)
	}
	// Unrelated fields stay untouched
	if updated.CustomerName != "Jane Doe" || updated.CustomerEmail != "jane@example.com" {
		t.Error("untouched fields were modified by partial update")
	}
	if updated.Vehicle != inspection.Vehicle {
		t.Error("vehicle info was modified by partial update")
	}
}

func TestUpdateInspectionRecomputesOverallScore(t *testing.T) {
	store := storage.NewMemoryStore()
	inspection := newInspection("tech-1")
	if err := CreateInspection(store, inspection); err != nil {
		t.Fatalf("CreateInspection: %v", err)
	}

	items := []models.InspectionItem{
		{Category: "Brakes", Item: "Driver Front", Condition: models.ConditionPass, Score: 5},
		{Category: "Brakes", Item: "Passenger Front", Condition: models.ConditionPass, Score: 5},
	}
	if err := UpdateInspection(store, inspection.ID, models.InspectionUpdate{Items: &items}); err != nil {
		t.Fatalf("UpdateInspection: %v", err)
	}

	updated, err := GetInspectionByID(store, inspection.ID)
	if err != nil {
		t.Fatalf("GetInspectionByID: %v", err)
	}
	if updated.OverallScore != 5 {
		t.Errorf("overall score after item replacement = %d, want 5", updated.OverallScore)
	}
}

func TestUpdateInspectionUnknownID(t *testing.T) {
	store := storage.NewMemoryStore()
	notes := "x"
	err := UpdateInspection(store, "missing", models.InspectionUpdate{Notes: &notes})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateInspection on unknown id = %v, want ErrNotFound", err)
	}
}

func TestDeleteInspection(t *testing.T) {
	store := storage.NewMemoryStore()
	inspection := newInspection("tech-1")
	if err := CreateInspection(store, inspection); err != nil {
		t.Fatalf("CreateInspection: %v", err)
	}

	if err := DeleteInspection(store, inspection.ID); err != nil {
		t.Fatalf("DeleteInspection: %v", err)
	}
	if _, err := GetInspectionByID(store, inspection.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("record still readable after delete: %v", err)
	}
	if err := DeleteInspection(store, inspection.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}

func TestRepairReportsForDeletedUser(t *testing.T) {
	store := storage.NewMemoryStore()

	mine := newInspection("user-1")
	theirs := newInspection("user-2")
	if err := CreateInspection(store, mine); err != nil {
		t.Fatal(err)
	}
	if err := CreateInspection(store, theirs); err != nil {
		t.Fatal(err)
	}

	if err := RepairReportsForDeletedUser(store, "user-1"); err != nil {
		t.Fatalf("RepairReportsForDeletedUser: %v", err)
	}
	// Idempotent: a second run must not suffix twice
	if err := RepairReportsForDeletedUser(store, "user-1"); err != nil {
		t.Fatalf("second RepairReportsForDeletedUser: %v", err)
	}

	repaired, err := GetInspectionByID(store, mine.ID)
	if err != nil {
		t.Fatal(err)
	}
	if repaired.CreatedBy != "user-1 (removed)" {
		t.Errorf("CreatedBy = %q, want %q", repaired.CreatedBy, "user-1 (removed)")
	}

	untouched, err := GetInspectionByID(store, theirs.ID)
	if err != nil {
		t.Fatal(err)
	}
	if untouched.CreatedBy != "user-2" {
		t.Errorf("unrelated report CreatedBy = %q, want user-2", untouched.CreatedBy)
	}
}
