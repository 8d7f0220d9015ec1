package identity

import "github.com/tabledash/backend/internal/domain/shared"

// Role is the closed set of authorization roles an account can hold.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole converts a raw string into a Role, rejecting anything
// outside the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", shared.NewDomainError("INVALID_ROLE", "Role must be one of: admin, user")
	}
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// RoleSet is a capability set used by the authorization gate. Membership
// is the only test handlers are allowed to perform on a role.
type RoleSet map[Role]struct{}

// NewRoleSet builds a set from the given roles.
func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// Contains reports whether the role is a member of the set.
func (s RoleSet) Contains(r Role) bool {
	_, ok := s[r]
	return ok
}

// Roles returns the members in declaration-independent order.
func (s RoleSet) Roles() []Role {
	out := make([]Role, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	return out
}

// The two canonical gate instantiations; every protected resource route
// chooses exactly one.
var (
	AdminOnly   = NewRoleSet(RoleAdmin)
	UserOrAdmin = NewRoleSet(RoleUser, RoleAdmin)
)
