package models

import "time"

// VehicleInfo identifies the vehicle an inspection was performed on.
type VehicleInfo struct {
	Make        string      `json:"make"`
	Model       string      `json:"model"`
	Year        string      `json:"year"`
	VIN         string      `json:"vin"`
	Mileage     int         `json:"mileage"`
	VehicleType VehicleType `json:"vehicle_type"`
}

// InspectionItem is one checked point on a vehicle.
type InspectionItem struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Item      string    `json:"item"`
	Condition Condition `json:"condition"`
	Notes     string    `json:"notes,omitempty"`
	// Score is the legacy 1-5 per-item rating, kept for backward
	// display compatibility. It feeds the unweighted overall score only.
	Score int `json:"score"`
}

// Inspection is one inspection event for one vehicle/customer pair.
type Inspection struct {
	ID            string           `json:"id"`
	CustomerName  string           `json:"customer_name"`
	CustomerEmail string           `json:"customer_email"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	// CreatedBy is a weak reference: deleting the referenced user rewrites
	// this field with a "(removed)" marker instead of nulling it.
	CreatedBy    string           `json:"created_by"`
	Vehicle      VehicleInfo      `json:"vehicle_info"`
	Items        []InspectionItem `json:"inspection_items"`
	// OverallScore is the legacy 1-5 average, denormalized at save time.
	// It is a separate value from the weighted health score, which is
	// recomputed on every read.
	OverallScore int          `json:"overall_score"`
	Notes        string       `json:"notes,omitempty"`
	Status       ReportStatus `json:"status"`
}

// InspectionUpdate carries a partial update; nil fields are left untouched.
type InspectionUpdate struct {
	CustomerName  *string           `json:"customer_name,omitempty"`
	CustomerEmail *string           `json:"customer_email,omitempty"`
	Vehicle       *VehicleInfo      `json:"vehicle_info,omitempty"`
	Items         *[]InspectionItem `json:"inspection_items,omitempty"`
	Notes         *string           `json:"notes,omitempty"`
	Status        *ReportStatus     `json:"status,omitempty"`
}
