package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var randInt = func(max int64) (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return n.Int64(), nil
}

// GenerateApplicationID returns an application reference like "APP-04217".
func GenerateApplicationID() (string, error) {
	n, err := randInt(100000)
	if err != nil {
		return "", fmt.Errorf("failed to generate application id: %w", err)
	}
	return fmt.Sprintf("APP-%05d", n), nil
}
