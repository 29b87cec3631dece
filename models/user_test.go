package models_test

import (
	"testing"

	"shakwa-be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHashAndComparePassword verifies the bcrypt roundtrip and that the
// plaintext is no longer stored after hashing.
func TestHashAndComparePassword(t *testing.T) {
	user := &models.User{Password: "secret123"}

	require.NoError(t, user.HashPassword())
	assert.NotEqual(t, "secret123", user.Password, "password must be hashed in place")

	assert.True(t, user.ComparePassword("secret123"))
	assert.False(t, user.ComparePassword("wrong-password"))
}

func TestIsValidNationalID(t *testing.T) {
	assert.True(t, models.IsValidNationalID("29801010123456"))
	assert.False(t, models.IsValidNationalID("123"))
	assert.False(t, models.IsValidNationalID("2980101012345a"))
	assert.False(t, models.IsValidNationalID(""))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, models.IsValidPhone("01012345678"))
	assert.True(t, models.IsValidPhone("01298765432"))
	assert.False(t, models.IsValidPhone("01312345678"), "013 is not a valid mobile prefix")
	assert.False(t, models.IsValidPhone("0101234567"), "too short")
	assert.False(t, models.IsValidPhone(""))
}
