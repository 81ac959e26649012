package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

// RandomHex returns n random bytes from crypto/rand, hex encoded (2n characters).
func RandomHex(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("random length must be positive")
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
