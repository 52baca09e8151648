package images

import (
	"crypto/sha256"
	"fmt"
	"os"
)

// HashBytes computes the SHA-256 digest of raw image bytes as a hex string.
// Used for duplicate detection, not security: identical bytes always produce
// the identical digest.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%x", sum)
}

// HashFile reads a file and returns its content digest.
func HashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image for hashing: %w", err)
	}
	return HashBytes(data), nil
}
