// Package entity contains the core business objects of the sync engine.
package entity

import "slices"

// Role is carried in dashboard session tokens. Admins manage every client;
// client users only read their own alerts.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleClient Role = "CLIENT"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is a role the dashboard issues.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleClient
}

// Roles held by one session.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ContainsAny reports whether rs holds at least one of roles.
func (rs Roles) ContainsAny(roles ...Role) bool {
	return slices.ContainsFunc(roles, rs.Contains)
}

// RolesFromStrings parses token claims, dropping unknown roles.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role := Role(s); role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
