package cryptox

import (
	"crypto/rand"
	"fmt"
)

// Token sizes in bytes before encoding.
const (
	TokenSize256 = 32
	TokenSize512 = 64
)

// GenerateKey returns size raw random bytes, used for cookie and signing keys.
func GenerateKey(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("key size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate random key: %w", err)
	}
	return buf, nil
}
