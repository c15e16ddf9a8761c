package domain

// Role is the closed set of access levels assignable to a credential.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"

	// RoleGuest is never stored; it is the implicit role of unauthenticated
	// callers as seen by the audit log.
	RoleGuest Role = "guest"
)

// ParseRole validates a role string against the assignable set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleStaff:
		return Role(s), true
	}
	return "", false
}

// AssignableRoles lists roles that may be stored on a credential.
func AssignableRoles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleStaff}
}
