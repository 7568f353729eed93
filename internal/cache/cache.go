// Package cache stores fetched page bodies so repeated scans of the
// same URL do not re-download it.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage interface shared by the memory and disk layers
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from a URL. The version segment lets a
// format change invalidate old entries wholesale.
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "credo:v1:" + hex.EncodeToString(hash[:])
}
