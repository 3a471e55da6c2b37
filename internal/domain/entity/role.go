package entity

import "slices"

// Role is an authorization role carried in API access token claims.
type Role string

const (
	// RoleUser may sync and read only its own account.
	RoleUser Role = "user"
	// RoleScheduler is held by the service account that fans out periodic syncs
	// and may trigger runs on behalf of any user.
	RoleScheduler Role = "scheduler"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is a role the API recognizes.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleScheduler:
		return true
	default:
		return false
	}
}

// Roles is the role set of one caller.
type Roles []Role

// Contains reports whether the caller holds role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings returns the roles in their claim form.
func (rs Roles) ToStrings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.String()
	}

	return out
}

// RolesFromStrings parses role claims. Claims naming no known role are dropped.
func RolesFromStrings(claims []string) Roles {
	roles := make(Roles, 0, len(claims))
	for _, claim := range claims {
		if role := Role(claim); role.IsValid() {
			roles = append(roles, role)
		}
	}

	return roles
}
