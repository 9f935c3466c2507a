// Package scoring computes the weighted 0-100 vehicle health score from
// per-item inspection conditions and the admin-configured deduction weights.
package scoring

import (
	"math"
	"strings"

	"mvpi-scorecard/app/models"
)

// Fallback deductions used when no weighting row is configured for an item.
// Missing configuration is a normal state (fresh installs, newly added
// catalog items), not an error.
const (
	DefaultFailedWeight            = 25
	DefaultAttentionRequiredWeight = 7
)

// weightKey is the structured composite lookup key. A tuple of normalized
// fields, not a concatenated string, so item names that differ only in
// stripped characters cannot collide.
type weightKey struct {
	vehicleType models.VehicleType
	section     string
	item        string
}

func normalizeKey(vehicleType models.VehicleType, section, item string) weightKey {
	return weightKey{
		vehicleType: vehicleType,
		section:     strings.ToLower(strings.TrimSpace(section)),
		item:        strings.ToLower(strings.TrimSpace(item)),
	}
}

// WeightTable indexes configured weighting rows for lookup during scoring.
type WeightTable struct {
	byKey map[weightKey]*models.WeightingItem
}

// NewWeightTable builds a lookup table from configured rows. Later rows win
// when two rows normalize to the same key.
func NewWeightTable(items []*models.WeightingItem) *WeightTable {
	t := &WeightTable{byKey: make(map[weightKey]*models.WeightingItem, len(items))}
	for _, item := range items {
		if item == nil {
			continue
		}
		t.byKey[normalizeKey(item.VehicleType, item.Section, item.Item)] = item
	}
	return t
}

// ItemWeight returns the deduction for observing a condition on one item.
// Pass and NotInspected never deduct. Configured weights are accepted
// unvalidated; absent configuration resolves to the fallback defaults.
func (t *WeightTable) ItemWeight(vehicleType models.VehicleType, section, item string, condition models.Condition) int {
	configured := t.byKey[normalizeKey(vehicleType, section, item)]
	switch condition {
	case models.ConditionFailed:
		if configured != nil {
			return configured.FailedWeight
		}
		return DefaultFailedWeight
	case models.ConditionAttentionRequired:
		if configured != nil {
			return configured.AttentionRequiredWeight
		}
		return DefaultAttentionRequiredWeight
	}
	return 0
}

// VehicleHealthScore aggregates item conditions into a 0-100 score.
//
// NotInspected items are skipped entirely: they neither deduct nor count
// toward the denominator. If nothing was inspected the vehicle scores 100 --
// a blank report must not display as "0% healthy". Deductions are not capped
// per item and are not normalized by item count; the weights represent
// absolute severity, so a score can legitimately floor at 0.
func (t *WeightTable) VehicleHealthScore(vehicleType models.VehicleType, items []models.InspectionItem) int {
	totalDeduction := 0
	countedItems := 0

	for _, item := range items {
		if item.Condition == models.ConditionNotInspected {
			continue
		}
		countedItems++
		totalDeduction += t.ItemWeight(vehicleType, item.Category, item.Item, item.Condition)
	}

	if countedItems == 0 {
		return 100
	}
	score := 100 - totalDeduction
	if score < 0 {
		return 0
	}
	return score
}

// OverallScore is the legacy unweighted path: the rounded average of the 1-5
// per-item ratings. It is denormalized onto the report at save time and never
// reconciled with the weighted health score.
func OverallScore(items []models.InspectionItem) int {
	if len(items) == 0 {
		return 0
	}
	total := 0
	for _, item := range items {
		total += item.Score
	}
	return int(math.Round(float64(total) / float64(len(items))))
}
