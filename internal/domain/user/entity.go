package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Admin is the profile record backing the admin role.
type Admin struct {
	UID          string
	Name         string
	Email        string
	PasswordHash *string
	CreatedAt    time.Time
}

// ResolutionState models the role-resolution chain an authenticated identity
// walks through: admin lookup, then employee lookup, then the active check.
// Every exit path is a distinct state.
type ResolutionState string

const (
	StateUnauthenticated ResolutionState = "unauthenticated"
	StateRoleResolving   ResolutionState = "role_resolving"
	StateActive          ResolutionState = "active"
	StateDeactivated     ResolutionState = "deactivated"
	StateUnauthorized    ResolutionState = "unauthorized"
)
