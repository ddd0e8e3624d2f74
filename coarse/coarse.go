// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: coarse.go — one global mutex over the whole bucket vector
//
// Purpose:
//   - The scalability floor of the family: every operation serializes on a
//     single guard, readers included.
//   - Doubles as the concurrent correctness oracle; whatever the striped
//     and lock-free tables return, this table must return too.
// ─────────────────────────────────────────────────────────────────────────────

package coarse

import (
	"sync"
	"sync/atomic"

	"hashmark/bucket"
	"hashmark/constants"
	"hashmark/hashkey"
)

// Map serializes all access through one table-wide mutex.
type Map[K comparable, V any] struct {
	mu      sync.Mutex
	buckets []bucket.Chain[K, V]
	hash    hashkey.Func[K]
	count   atomic.Uint64
}

// New builds a table with bucketCount chains behind a single guard.
func New[K comparable, V any](bucketCount int, hash hashkey.Func[K]) *Map[K, V] {
	if bucketCount <= 0 {
		bucketCount = constants.DefaultBuckets
	}
	return &Map[K, V]{
		buckets: make([]bucket.Chain[K, V], bucketCount),
		hash:    hash,
	}
}

func (m *Map[K, V]) index(k K) int {
	return int(m.hash(k) % uint64(len(m.buckets)))
}

// Insert stores (k, v) under the global guard; true means the key was new.
func (m *Map[K, V]) Insert(k K, v V) bool {
	m.mu.Lock()
	inserted := m.buckets[m.index(k)].Put(k, v)
	if inserted {
		m.count.Add(1)
	}
	m.mu.Unlock()
	return inserted
}

// Search returns the value under k. Readers take the same guard as
// writers; that is the point of this variant.
func (m *Map[K, V]) Search(k K) (V, bool) {
	m.mu.Lock()
	v, ok := m.buckets[m.index(k)].Get(k)
	m.mu.Unlock()
	return v, ok
}

// Remove deletes the entry under k.
func (m *Map[K, V]) Remove(k K) bool {
	m.mu.Lock()
	removed := m.buckets[m.index(k)].Delete(k)
	if removed {
		m.count.Add(^uint64(0))
	}
	m.mu.Unlock()
	return removed
}

// Size reports the resident entry count; it may lag in-flight operations.
func (m *Map[K, V]) Size() uint64 { return m.count.Load() }

// Name identifies the variant in logs and CSV rows.
func (m *Map[K, V]) Name() string { return "Coarse" }
