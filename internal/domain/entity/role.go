// Package entity contains the core business objects of the project.
package entity

// Role controls the authorization level attached to a user and carried in the session token.
type Role string

const (
	// RoleUser is the role every new account receives.
	RoleUser Role = "USER"
	// RoleAdmin grants access to administrative routes.
	RoleAdmin Role = "ADMIN"
)

// DefaultRole is assigned when no stored role can be found for a user.
const DefaultRole = RoleUser

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

// RoleOrDefault returns r when it is valid, DefaultRole otherwise.
func RoleOrDefault(r Role) Role {
	if r.IsValid() {
		return r
	}

	return DefaultRole
}
