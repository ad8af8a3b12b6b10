// insight/cache.go
package insight

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/tradejournal/metrics"
)

// Cache memoizes generated insight text. An entry is served only while
// the content fingerprint still matches and the entry is younger than
// the TTL, so edits to the underlying records invalidate it
// immediately. The cache is an explicit value to be passed around, not
// package state.
type Cache struct {
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

type entry struct {
	hash    string
	text    string
	created time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// Get returns the cached text for key if its fingerprint matches and it
// has not expired.
func (c *Cache) Get(key, hash string) (string, bool) {
	e, ok := c.entries[key]
	if !ok || e.hash != hash {
		return "", false
	}
	if c.now().Sub(e.created) >= c.ttl {
		delete(c.entries, key)
		return "", false
	}
	return e.text, true
}

// Put stores generated text under key with its content fingerprint.
func (c *Cache) Put(key, hash, text string) {
	c.entries[key] = entry{hash: hash, text: text, created: c.now()}
}

// Fingerprint hashes the parts of the journal an insight depends on:
// month keys, update times and net P/L. Any record edit changes it.
func Fingerprint(months []metrics.MonthRecord) string {
	var b strings.Builder
	for _, m := range months {
		fmt.Fprintf(&b, "%s|%d|%g;", m.Month, m.UpdatedAt, m.NetProfitLoss)
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
