package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightbook/config"
)

func TestAuthenticate(t *testing.T) {
	users := []User{
		{Username: "admin", Password: "secret", Role: RoleAdmin},
		{Username: "agent", Password: "pass", Role: RoleAgent},
	}

	u, err := Authenticate(users, "admin", "secret")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())

	u, err = Authenticate(users, "agent", "pass")
	require.NoError(t, err)
	assert.False(t, u.IsAdmin())

	_, err = Authenticate(users, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = Authenticate(users, "nobody", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestFromConfig(t *testing.T) {
	users := FromConfig([]config.UserConfig{
		{Username: "admin", Password: "secret", Role: "admin"},
	})
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Username)
	assert.True(t, users[0].IsAdmin())
}
