// Package access holds the role-based data-access rules. Every check is a
// pure, stateless predicate over the role enum; there is no hierarchy or
// inheritance, which keeps the authorization surface auditable.
package access

import (
	"sort"
	"strings"

	"mvpi-scorecard/app/models"
)

// VisibleInspections filters reports down to what the actor may see, sorted
// newest-first. Staff roles see everything; customers see only reports
// carrying their own email; any unknown role sees nothing (fail closed).
func VisibleInspections(reports []*models.Inspection, role models.Role, actorEmail string) []*models.Inspection {
	var visible []*models.Inspection

	switch role {
	case models.RoleAdmin, models.RoleTech, models.RoleAdvisor:
		visible = append(visible, reports...)
	case models.RoleCustomer:
		for _, report := range reports {
			if strings.EqualFold(report.CustomerEmail, actorEmail) {
				visible = append(visible, report)
			}
		}
	default:
		return []*models.Inspection{}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].CreatedAt.After(visible[j].CreatedAt)
	})
	return visible
}

// CanCreateInspection reports whether the role may record new inspections.
func CanCreateInspection(role models.Role) bool {
	switch role {
	case models.RoleAdmin, models.RoleTech, models.RoleAdvisor:
		return true
	}
	return false
}

// CanEditInspection reports whether the role may modify existing inspections.
func CanEditInspection(role models.Role) bool {
	switch role {
	case models.RoleAdmin, models.RoleTech, models.RoleAdvisor:
		return true
	}
	return false
}

// CanDeleteInspection reports whether the role may remove inspections.
func CanDeleteInspection(role models.Role) bool {
	return role == models.RoleAdmin
}

// CanManageUsers reports whether the role may administer user accounts.
func CanManageUsers(role models.Role) bool {
	return role == models.RoleAdmin
}

// CanManageFeedback reports whether the role may review feedback entries.
func CanManageFeedback(role models.Role) bool {
	return role == models.RoleAdmin
}
