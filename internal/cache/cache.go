package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache defines the interface for caching analysis results.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from document content. The content is
// whitespace-normalized before hashing so trivially reformatted copies of
// the same article hit the same entry.
func Key(content string) string {
	normalized := strings.Join(strings.Fields(content), " ")
	hash := sha256.Sum256([]byte(normalized))
	return "linkscout:v1:" + hex.EncodeToString(hash[:])
}
