package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12
)

var bcryptGenerateFromSecret = bcrypt.GenerateFromPassword

// HashSecret hashes an ownership secret (last 4 NRIC digits) using bcrypt
func HashSecret(secret string) (string, error) {
	bytes, err := bcryptGenerateFromSecret([]byte(secret), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(bytes), nil
}

// CheckSecret compares a candidate secret with a stored hash
func CheckSecret(secret, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	return err == nil
}
