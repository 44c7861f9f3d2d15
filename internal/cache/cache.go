// Package cache provides the read-through cache the archive adapter uses
// for fetched page bodies. Archived snapshots are immutable, so cached
// entries stay valid for as long as the TTLs allow.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte-blob cache keyed by string.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from a URL.
func Key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return "icewatch:v1:" + hex.EncodeToString(sum[:])
}
