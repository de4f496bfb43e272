package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores encoded values by key
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from input text so the text itself is never stored
func Key(namespace, text string) string {
	hash := sha256.Sum256([]byte(text))
	return "symptriage:v1:" + namespace + ":" + hex.EncodeToString(hash[:])
}
