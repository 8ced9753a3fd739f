package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateID returns prefix followed by 16 random hex characters, e.g.
// "ws-3f9a0c1d2e4b5a6c". It names hub subscribers, not match entities.
func GenerateID(prefix string) string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return prefix + hex.EncodeToString(b)
}
