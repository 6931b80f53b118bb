package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleTypeValid(t *testing.T) {
	for _, r := range []RoleType{RoleStudent, RoleManager, RoleDirector, RoleAdmin} {
		assert.True(t, r.Valid(), string(r))
	}
	assert.False(t, RoleType("WARDEN").Valid())
	assert.False(t, RoleType("student").Valid())
}

func TestRoleTypeIsStaff(t *testing.T) {
	assert.False(t, RoleStudent.IsStaff())
	assert.True(t, RoleManager.IsStaff())
	assert.True(t, RoleDirector.IsStaff())
	assert.True(t, RoleAdmin.IsStaff())
}

func TestUserFullName(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		want      string
	}{
		{"both names", "Asha", "Verma", "Asha Verma"},
		{"first name only", "Asha", "", "Asha"},
		{"last name only", "", "Verma", "Verma"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{FirstName: tt.firstName, LastName: tt.lastName}
			assert.Equal(t, tt.want, u.FullName())
		})
	}
}
