package models

// Condition is the categorical outcome of checking one inspection item.
type Condition string

const (
	ConditionPass              Condition = "pass"
	ConditionAttentionRequired Condition = "attention_required"
	ConditionFailed            Condition = "failed"
	ConditionNotInspected      Condition = "not_inspected"
)

// IsValid returns true if the condition is a recognized value.
func (c Condition) IsValid() bool {
	switch c {
	case ConditionPass, ConditionAttentionRequired, ConditionFailed, ConditionNotInspected:
		return true
	}
	return false
}

// VehicleType selects which weighting table applies to a vehicle.
type VehicleType string

const (
	VehicleTypeICE VehicleType = "ice"
	VehicleTypeEV  VehicleType = "ev"
)

func (v VehicleType) IsValid() bool {
	return v == VehicleTypeICE || v == VehicleTypeEV
}

// ReportStatus defines the lifecycle state of an inspection report.
type ReportStatus string

const (
	ReportDraft     ReportStatus = "draft"
	ReportCompleted ReportStatus = "completed"
	ReportReviewed  ReportStatus = "reviewed"
)

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportDraft, ReportCompleted, ReportReviewed:
		return true
	}
	return false
}

// Role defines the access level of a user.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleTech     Role = "tech"
	RoleAdvisor  Role = "advisor"
	RoleCustomer Role = "customer"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTech, RoleAdvisor, RoleCustomer:
		return true
	}
	return false
}

// FeedbackStatus defines whether a feedback entry has been looked at by staff.
type FeedbackStatus string

const (
	FeedbackNew      FeedbackStatus = "new"
	FeedbackReviewed FeedbackStatus = "reviewed"
)
