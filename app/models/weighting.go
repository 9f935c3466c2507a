package models

// WeightingItem is one configured deduction rule. FailedWeight and
// AttentionRequiredWeight are percentage points deducted from 100 when the
// corresponding condition is observed on the keyed item.
type WeightingItem struct {
	VehicleType             VehicleType `json:"vehicle_type"`
	Section                 string      `json:"section"`
	Item                    string      `json:"item"`
	FailedWeight            int         `json:"failed_weight"`
	AttentionRequiredWeight int         `json:"attention_required_weight"`
}
