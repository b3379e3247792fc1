package auth

import "strings"

// Role is the coarse actor class carried in a token.
type Role string

const (
	RoleVisitor Role = "VISITOR"
	RoleWriter  Role = "WRITER"
	RoleAdmin   Role = "ADMIN"
)

// Permission is a single capability carried in a token.
type Permission string

const (
	PermRead   Permission = "READ"
	PermCreate Permission = "CREATE"
	PermUpdate Permission = "UPDATE"
	PermDelete Permission = "DELETE"
)

// PermissionsFor returns the fixed permission set requested for role.
// Unknown roles get read-only access, matching the backend default.
func PermissionsFor(role Role) []Permission {
	switch role {
	case RoleAdmin:
		return []Permission{PermRead, PermCreate, PermUpdate, PermDelete}
	case RoleWriter:
		return []Permission{PermRead, PermCreate, PermUpdate}
	default:
		return []Permission{PermRead}
	}
}

// ParseRole normalizes user input into a known role.
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(raw))) {
	case RoleVisitor:
		return RoleVisitor, true
	case RoleWriter:
		return RoleWriter, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

// Allows reports whether role or perms grant p. ADMIN implies everything.
func Allows(role Role, perms []Permission, p Permission) bool {
	if role == RoleAdmin {
		return true
	}
	for _, have := range perms {
		if have == p {
			return true
		}
	}
	return false
}
