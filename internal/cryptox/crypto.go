// Package cryptox holds the password hashing primitives used by the
// credential store. Passwords are only ever persisted as bcrypt hashes.
package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrCostOutOfRange is returned when a configured bcrypt cost is outside the
// range accepted by the bcrypt package.
var ErrCostOutOfRange = errors.New("bcrypt cost out of range")

// ValidateCost checks that cost is usable for HashPassword.
func ValidateCost(cost int) error {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return fmt.Errorf("%w: %d (allowed %d..%d)", ErrCostOutOfRange, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

// HashPassword derives a salted bcrypt hash of password. The salt is random
// per call, so hashing the same password twice yields different strings.
func HashPassword(password []byte, cost int) (string, error) {
	if err := ValidateCost(cost); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword(password, cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
// Comparison is constant-time; a malformed hash never matches.
func CheckPassword(hash string, password []byte) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), password) == nil
}
