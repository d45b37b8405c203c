// Package auth holds the credential primitives: bcrypt password hashes and
// signed session tokens.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password accepted at sign-up or update.
const MinPasswordLength = 8

var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword returns a bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword compares password against a stored hash. An empty hash (an
// account created through Google sign-in) never matches.
func CheckPassword(hash, password string) error {
	if hash == "" {
		return ErrPasswordMismatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
