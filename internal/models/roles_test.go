package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role(2).Valid())
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleUser.IsAdmin())
	assert.Equal(t, "Admin", RoleAdmin.String())
	assert.Equal(t, "Unknown", Role(-1).String())
}

func TestUserJSONHidesHash(t *testing.T) {
	raw, err := json.Marshal(User{Email: "a@x.com", Role: RoleAdmin, PasswordHash: "$2a$10$secret"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.Contains(t, string(raw), `"role":1`)
	assert.Contains(t, string(raw), `"created_by":null`)
}

func TestActorID(t *testing.T) {
	assert.False(t, ActorID(nil).Valid)
	u := &User{}
	u.ID[0] = 1
	got := ActorID(u)
	assert.True(t, got.Valid)
	assert.Equal(t, u.ID, got.UUID)
}
