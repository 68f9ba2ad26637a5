package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHasher_Hash(t *testing.T) {
	hasher := NewPasswordHasher()

	password := "Secr3t!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Salted: hashing the same input twice yields different strings,
	// both of which verify.
	hash2, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
	assert.True(t, hasher.Verify(password, hash))
	assert.True(t, hasher.Verify(password, hash2))
}

func TestPasswordHasher_Verify(t *testing.T) {
	hasher := NewPasswordHasher()

	hash, err := hasher.Hash("Secr3t!")
	assert.NoError(t, err)

	assert.True(t, hasher.Verify("Secr3t!", hash))
	assert.False(t, hasher.Verify("wrong", hash))
	assert.False(t, hasher.Verify("", hash))

	// Malformed hash verifies as false, never panics or errors.
	assert.False(t, hasher.Verify("Secr3t!", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Verify("Secr3t!", ""))
}

func TestPasswordHasher_DistinctPasswords(t *testing.T) {
	hasher := NewPasswordHasher()

	hashA, err := hasher.Hash("password-a")
	assert.NoError(t, err)
	hashB, err := hasher.Hash("password-b")
	assert.NoError(t, err)

	assert.False(t, hasher.Verify("password-a", hashB))
	assert.False(t, hasher.Verify("password-b", hashA))
}
