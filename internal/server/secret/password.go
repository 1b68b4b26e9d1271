// Package secret wraps one-way password hashing. The hash is computed
// exactly once, at account creation; nothing here runs on save.
package secret

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/arijitp/notekeeper/internal/shared"
)

// Hash transforms a plaintext password into a salted bcrypt hash.
func Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", shared.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare checks a candidate password against a stored hash. It returns
// shared.ErrInvalidInput if either side is empty and
// shared.ErrIncorrectPassword on mismatch.
func Compare(candidate, hash string) error {
	if candidate == "" || hash == "" {
		return shared.ErrInvalidInput
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)); err != nil {
		return shared.ErrIncorrectPassword
	}
	return nil
}
