package database

import (
	"time"

	"mvpi-scorecard/app/models"
	"mvpi-scorecard/app/scoring"
	"mvpi-scorecard/app/storage"

	"github.com/google/uuid"
)

// removedSuffix marks a createdBy reference whose user has been deleted.
const removedSuffix = " (removed)"

func GetAllInspections(s storage.Store) ([]*models.Inspection, error) {
	return storage.LoadCollection[*models.Inspection](s, storage.KeyInspections)
}

func GetInspectionByID(s storage.Store, inspectionID string) (*models.Inspection, error) {
	inspections, err := GetAllInspections(s)
	if err != nil {
		return nil, err
	}
	for _, inspection := range inspections {
		if inspection.ID == inspectionID {
			return inspection, nil
		}
	}
	return nil, ErrNotFound
}

// CreateInspection assigns the record identity and timestamps, denormalizes
// the legacy overall score and stores the report. Field validation is the
// form layer's job; any well-typed payload is accepted here.
func CreateInspection(s storage.Store, inspection *models.Inspection) error {
	inspections, err := GetAllInspections(s)
	if err != nil {
		return err
	}

	if inspection.ID == "" {
		inspection.ID = uuid.New().String()
	}
	for i := range inspection.Items {
		if inspection.Items[i].ID == "" {
			inspection.Items[i].ID = uuid.New().String()
		}
	}
	now := time.Now()
	inspection.CreatedAt = now
	inspection.UpdatedAt = now
	if inspection.Status == "" {
		inspection.Status = models.ReportDraft
	}
	inspection.OverallScore = scoring.OverallScore(inspection.Items)

	inspections = append(inspections, inspection)
	return storage.SaveCollection(s, storage.KeyInspections, inspections)
}

// UpdateInspection merges a partial update into the stored report and always
// refreshes UpdatedAt, whether or not any field changed. The legacy overall
// score is re-denormalized when the item list is replaced.
func UpdateInspection(s storage.Store, inspectionID string, updates models.InspectionUpdate) error {
	inspections, err := GetAllInspections(s)
	if err != nil {
		return err
	}

	for _, inspection := range inspections {
		if inspection.ID != inspectionID {
			continue
		}
		if updates.CustomerName != nil {
			inspection.CustomerName = *updates.CustomerName
		}
		if updates.CustomerEmail != nil {
			inspection.CustomerEmail = *updates.CustomerEmail
		}
		if updates.Vehicle != nil {
			inspection.Vehicle = *updates.Vehicle
		}
		if updates.Items != nil {
			inspection.Items = *updates.Items
			for i := range inspection.Items {
				if inspection.Items[i].ID == "" {
					inspection.Items[i].ID = uuid.New().String()
				}
			}
			inspection.OverallScore = scoring.OverallScore(inspection.Items)
		}
		if updates.Notes != nil {
			inspection.Notes = *updates.Notes
		}
		if updates.Status != nil {
			inspection.Status = *updates.Status
		}
		inspection.UpdatedAt = time.Now()
		return storage.SaveCollection(s, storage.KeyInspections, inspections)
	}
	return ErrNotFound
}

func DeleteInspection(s storage.Store, inspectionID string) error {
	inspections, err := GetAllInspections(s)
	if err != nil {
		return err
	}
	for i, inspection := range inspections {
		if inspection.ID == inspectionID {
			inspections = append(inspections[:i], inspections[i+1:]...)
			return storage.SaveCollection(s, storage.KeyInspections, inspections)
		}
	}
	return ErrNotFound
}

// RepairReportsForDeletedUser rewrites the weak createdBy reference on every
// report created by the user, appending the removed marker so the audit
// trail survives the account. Idempotent: an already-marked reference is
// left alone rather than suffixed again.
func RepairReportsForDeletedUser(s storage.Store, userID string) error {
	inspections, err := GetAllInspections(s)
	if err != nil {
		return err
	}

	changed := false
	for _, inspection := range inspections {
		switch inspection.CreatedBy {
		case userID:
			inspection.CreatedBy = userID + removedSuffix
			changed = true
		case userID + removedSuffix:
			// already repaired, never suffix twice
		}
	}
	if !changed {
		return nil
	}
	return storage.SaveCollection(s, storage.KeyInspections, inspections)
}
