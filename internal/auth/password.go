// Package auth provides credential primitives: password hashing,
// session tokens, and API key generation.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptMaxInputLen is the number of password bytes bcrypt actually uses.
// Longer inputs are silently truncated by some implementations and rejected
// by others, so anything over the limit is pre-hashed instead.
const bcryptMaxInputLen = 72

// normalizePassword prepares a password for hashing or verification.
// Inputs at or under 72 bytes (UTF-8) pass through unchanged; longer inputs
// are replaced by the hex SHA-256 of their bytes. The same rule must run on
// both hash and verify or long passwords become unverifiable.
func normalizePassword(password string) string {
	b := []byte(password)
	if len(b) <= bcryptMaxInputLen {
		return password
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// HashPassword creates a bcrypt hash of the given password.
// The returned string encodes algorithm, cost and salt, so verification
// is self-describing.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(normalizePassword(password)), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks a password against a stored bcrypt hash.
// Returns false for a mismatch; an error only for a malformed hash.
func VerifyPassword(password, encodedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(normalizePassword(password)))
	if err == nil {
		return true, nil
	}
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}
	return false, fmt.Errorf("verify password: %w", err)
}
