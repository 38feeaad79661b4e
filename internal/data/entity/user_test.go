package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAdminUser(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdminUser())
	assert.True(t, (&User{Role: RoleUser, IsSuperuser: true}).IsAdminUser())
	assert.True(t, (&User{Role: RoleUser, IsStaff: true}).IsAdminUser())

	assert.False(t, (&User{Role: RoleUser}).IsAdminUser())
	assert.False(t, (&User{Role: RoleModerator}).IsAdminUser())
}

func TestIsModerator(t *testing.T) {
	assert.True(t, (&User{Role: RoleModerator}).IsModerator())

	// Admin does not imply moderator; the roles grant different things
	assert.False(t, (&User{Role: RoleAdmin}).IsModerator())
	assert.False(t, (&User{Role: RoleUser}).IsModerator())
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("user"))
	assert.True(t, ValidRole("moderator"))
	assert.True(t, ValidRole("admin"))

	assert.False(t, ValidRole(""))
	assert.False(t, ValidRole("superuser"))
}
