package client

import (
	"github.com/tabledash/backend/internal/domain/identity"
)

// Role returns the held identity's role, or an invalid zero role when
// anonymous
func (s *AuthStore) Role() (identity.Role, bool) {
	admin := s.Identity()
	if admin == nil {
		return "", false
	}
	role, err := identity.ParseRole(admin.Role)
	if err != nil {
		return "", false
	}
	return role, true
}

// Allows reports whether the held identity may pass a gate requiring
// one of the given roles. Anonymous and unknown roles never pass.
func (s *AuthStore) Allows(allowed identity.RoleSet) bool {
	role, ok := s.Role()
	if !ok {
		return false
	}
	return allowed.Contains(role)
}

// CanManageAdmins reports whether the admin collection is accessible
func (s *AuthStore) CanManageAdmins() bool {
	return s.Allows(identity.AdminOnly)
}

// CanManageUsers reports whether the directory user collection is
// accessible. It is gated like the admin collection.
func (s *AuthStore) CanManageUsers() bool {
	return s.Allows(identity.AdminOnly)
}

// CanManageProducts reports whether the product collections are
// accessible
func (s *AuthStore) CanManageProducts() bool {
	return s.Allows(identity.UserOrAdmin)
}
