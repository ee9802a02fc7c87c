// Package hash implements the hashing helpers used to refer to a key without revealing it
package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

const fingerprintLength = 8

// SHA256 returns a 32 bytes SHA256 hash of the input
func SHA256(in []byte) ([]byte, error) {
	h := sha256.New()
	_, err := h.Write(in)
	if err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

// Fingerprint returns a short hex encoded SHA256 fingerprint of the input.
// It's safe to write the fingerprint of a key into the logs.
func Fingerprint(in string) string {
	sum := sha256.Sum256([]byte(in))
	return hex.EncodeToString(sum[:fingerprintLength])
}
