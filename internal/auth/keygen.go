package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
)

// Key format: sf_{env}_{secret}
// Example: sf_live_3q28hJ9xJ0c5vZk1mQn7pR4sT6uW8yA0bC2dE4fG6hI
const keySecretBytes = 32 // 256 bits of entropy, base64url encoded

// Environment indicators for key prefix.
const (
	EnvLive = "live"
	EnvTest = "test"
)

var (
	// ErrInvalidKeyFormat indicates the key format is invalid.
	ErrInvalidKeyFormat = errors.New("invalid API key format")
	// keyFormatRegex validates the key format.
	keyFormatRegex = regexp.MustCompile(`^sf_(live|test)_[A-Za-z0-9_-]{43}$`)
)

// GeneratedKey contains the parts of a newly generated API key.
type GeneratedKey struct {
	Plaintext string // Full key (show once only)
	Hash      string // SHA-256 lookup hash for storage
}

// GenerateAPIKey creates a new API key with the specified environment.
// Returns the plaintext key (to show once) and its lookup hash (to store).
// The plaintext is never persisted; possession is proven later by hashing
// the presented key and comparing against storage.
func GenerateAPIKey(env string) (*GeneratedKey, error) {
	if env != EnvLive && env != EnvTest {
		env = EnvLive // Default to live
	}

	secretBytes := make([]byte, keySecretBytes)
	if _, err := rand.Read(secretBytes); err != nil {
		return nil, fmt.Errorf("generate secret: %w", err)
	}
	secret := base64.RawURLEncoding.EncodeToString(secretBytes)

	plaintext := fmt.Sprintf("sf_%s_%s", env, secret)

	return &GeneratedKey{
		Plaintext: plaintext,
		Hash:      LookupHash(plaintext),
	}, nil
}

// LookupHash computes the storage hash for an API key.
// This is a fast deterministic hash, not a password hash: the key itself
// carries the entropy, and determinism is what enables lookup by hash
// equality.
func LookupHash(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// ValidateKeyFormat checks if the key matches the expected format.
func ValidateKeyFormat(key string) bool {
	return keyFormatRegex.MatchString(key)
}
