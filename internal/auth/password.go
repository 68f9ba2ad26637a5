package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

type bcryptHasher struct{}

// NewPasswordHasher returns a bcrypt-backed hasher. bcrypt embeds a random
// salt per call, so hashing the same password twice yields different strings.
func NewPasswordHasher() PasswordHasher {
	return &bcryptHasher{}
}

func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	return string(bytes), err
}

// Verify reports whether plaintext matches hash. A malformed hash verifies
// as false rather than returning an error.
func (h *bcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
