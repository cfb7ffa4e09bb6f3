// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/pkg/errors"
)

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator who may mutate any resource.
	RoleAdmin Role = "admin"
)

// ErrInvalidRole is returned when a stored role string is not one of the known roles.
var ErrInvalidRole = errors.New("invalid role")

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role grants administrative rights.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// ParseRole converts a persisted role string into a Role.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", errors.Wrapf(ErrInvalidRole, "role %q", s)
	}

	return role, nil
}
