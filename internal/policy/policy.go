// Package policy is the single authorization decision point. Every protected
// handler consults it instead of comparing role strings inline, so ownership
// and role rules cannot drift between endpoints.
package policy

import (
	"feedback-portal/internal/apperr"
	"feedback-portal/internal/models"
)

// Caller is the authenticated principal extracted from the request context.
type Caller struct {
	ID   string
	Role models.Role
}

// RequireManager allows only managers. Unknown roles are denied, never
// passed through.
func RequireManager(c Caller) error {
	switch c.Role {
	case models.RoleManager:
		return nil
	case models.RoleEmployee:
		return apperr.Forbidden("only managers can access this endpoint")
	default:
		return apperr.Forbidden("unknown role")
	}
}

// RequireEmployee allows only employees.
func RequireEmployee(c Caller) error {
	switch c.Role {
	case models.RoleEmployee:
		return nil
	case models.RoleManager:
		return apperr.Forbidden("only employees can access this endpoint")
	default:
		return apperr.Forbidden("unknown role")
	}
}

// CanViewHistory decides who may read an employee's feedback history: the
// employee themselves, or any manager.
func CanViewHistory(c Caller, employeeID string) error {
	switch c.Role {
	case models.RoleManager:
		return nil
	case models.RoleEmployee:
		if c.ID == employeeID {
			return nil
		}
		return apperr.Forbidden("employees can only view their own feedback")
	default:
		return apperr.Forbidden("unknown role")
	}
}
