package ffi

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short hex fingerprint of the library file at path.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars), so
// callers can pin the exact build they were tested against.
func Fingerprint(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:10]), nil
}
