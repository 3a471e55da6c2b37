package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesFromStrings(t *testing.T) {
	tests := []struct {
		name   string
		claims []string
		want   Roles
	}{
		{name: "known roles", claims: []string{"user", "scheduler"}, want: Roles{RoleUser, RoleScheduler}},
		{name: "unknown roles are dropped", claims: []string{"admin", "scheduler", ""}, want: Roles{RoleScheduler}},
		{name: "no claims", claims: nil, want: Roles{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RolesFromStrings(tt.claims))
		})
	}
}

func TestRoles_ContainsAndToStrings(t *testing.T) {
	roles := Roles{RoleScheduler}

	assert.True(t, roles.Contains(RoleScheduler))
	assert.False(t, roles.Contains(RoleUser))
	assert.Equal(t, []string{"scheduler"}, roles.ToStrings())
	assert.Equal(t, roles, RolesFromStrings(roles.ToStrings()))
}
