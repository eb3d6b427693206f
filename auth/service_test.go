package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hashed, err := hashPassword("hunter22", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "hunter22", hashed)
	assert.NoError(t, verifyPassword(hashed, "hunter22"))
	assert.Error(t, verifyPassword(hashed, "hunter23"))
}

func TestHashPasswordUsesConfiguredCost(t *testing.T) {
	hashed, err := hashPassword("hunter22", 6)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := hashPassword("hunter22", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := hashPassword("hunter22", bcrypt.MinCost)
	require.NoError(t, err)

	// bcrypt embeds a random salt, so equal passwords hash differently.
	assert.NotEqual(t, first, second)
}
