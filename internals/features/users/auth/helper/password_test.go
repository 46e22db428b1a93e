// file: internals/features/users/auth/helper/password_test.go
package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia-banget-123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia-banget-123", hash)

	assert.NoError(t, CheckPasswordHash(hash, "rahasia-banget-123"))
	assert.Error(t, CheckPasswordHash(hash, "salah-password"))
}

func TestValidateRegisterInput(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateRegisterInput("budi_s", "budi@kampus.ac.id", "password123"))
	})

	t.Run("empty username", func(t *testing.T) {
		assert.Error(t, ValidateRegisterInput("  ", "budi@kampus.ac.id", "password123"))
	})

	t.Run("bad email", func(t *testing.T) {
		assert.Error(t, ValidateRegisterInput("budi_s", "bukan-email", "password123"))
	})

	t.Run("short password", func(t *testing.T) {
		assert.Error(t, ValidateRegisterInput("budi_s", "budi@kampus.ac.id", "1234"))
	})
}

func TestValidateLoginInput(t *testing.T) {
	assert.NoError(t, ValidateLoginInput("budi@kampus.ac.id", "password123"))
	assert.Error(t, ValidateLoginInput("", "password123"))
	assert.Error(t, ValidateLoginInput("budi@kampus.ac.id", ""))
}
