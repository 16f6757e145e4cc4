package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateResetToken returns a 40-character hex string backed by 20 bytes of
// crypto/rand entropy.
func GenerateResetToken() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
