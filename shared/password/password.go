// Package password hashes account passwords with bcrypt.
package password

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

const DefaultCost = bcrypt.DefaultCost

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrEmptyPassword   = errors.New("password cannot be empty")
)

// decoy is compared against when there is no stored hash, so a login for an
// unknown email costs as much as one with a wrong password.
var decoy = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("decoy-password"), DefaultCost)

	return hash
})

func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// Verify returns ErrInvalidPassword unless password matches hash. An empty
// hash never matches.
func Verify(password, hash string) error {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(decoy(), []byte(password))

		return ErrInvalidPassword
	}

	if password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidPassword
	}

	if err != nil {
		return fmt.Errorf("failed to verify password: %w", err)
	}

	return nil
}

// NeedsRehash reports whether hash was made with a weaker cost than DefaultCost.
func NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))

	return err == nil && cost < DefaultCost
}
