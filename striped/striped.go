// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: striped.go — B buckets sharing M < B stripe locks
//
// Purpose:
//   - The parameterized middle ground between one lock and one lock per
//     bucket: M padded stripes guard B buckets by modular assignment.
//
// Notes:
//   - Bucket index is h % B; the stripe is derived from the bucket index
//     (bucket % M), never from the hash a second time. Deriving it from h
//     independently would let two keys in one bucket take different locks
//     whenever M does not divide B. When M does not divide B the
//     stripe→bucket cover is uneven, which is accepted — contention
//     statistics, not placement, change.
//   - Keys whose buckets differ can still serialize when their stripes
//     collide; that false contention is the cost this design trades for
//     M× fewer locks.
// ─────────────────────────────────────────────────────────────────────────────

package striped

import (
	"sync"
	"sync/atomic"

	"hashmark/bucket"
	"hashmark/constants"
	"hashmark/hashkey"
)

// paddedLock keeps each stripe on its own cache line.
type paddedLock struct {
	mu sync.Mutex
	_  [constants.CacheLine - 8]byte
}

// Map guards bucketCount chains with a fixed stripe pool.
type Map[K comparable, V any] struct {
	stripes []paddedLock
	buckets []bucket.Chain[K, V]
	hash    hashkey.Func[K]
	count   atomic.Uint64
}

// New builds a table of bucketCount chains guarded by stripeCount locks;
// stripeCount ≤ 0 selects constants.StripeCount and is clamped to the
// bucket count so no stripe guards zero buckets.
func New[K comparable, V any](bucketCount, stripeCount int, hash hashkey.Func[K]) *Map[K, V] {
	if bucketCount <= 0 {
		bucketCount = constants.DefaultBuckets
	}
	if stripeCount <= 0 {
		stripeCount = constants.StripeCount
	}
	if stripeCount > bucketCount {
		stripeCount = bucketCount
	}
	return &Map[K, V]{
		stripes: make([]paddedLock, stripeCount),
		buckets: make([]bucket.Chain[K, V], bucketCount),
		hash:    hash,
	}
}

// Stripes reports the stripe pool size after clamping.
func (m *Map[K, V]) Stripes() int { return len(m.stripes) }

func (m *Map[K, V]) locate(k K) (*paddedLock, uint64) {
	bi := m.hash(k) % uint64(len(m.buckets))
	// stripe is a function of the bucket, so one bucket = one lock
	return &m.stripes[bi%uint64(len(m.stripes))], bi
}

// Insert stores (k, v) under the owning stripe's lock.
func (m *Map[K, V]) Insert(k K, v V) bool {
	l, bi := m.locate(k)
	l.mu.Lock()
	inserted := m.buckets[bi].Put(k, v)
	if inserted {
		m.count.Add(1)
	}
	l.mu.Unlock()
	return inserted
}

// Search returns the value under k.
func (m *Map[K, V]) Search(k K) (V, bool) {
	l, bi := m.locate(k)
	l.mu.Lock()
	v, ok := m.buckets[bi].Get(k)
	l.mu.Unlock()
	return v, ok
}

// Remove deletes the entry under k.
func (m *Map[K, V]) Remove(k K) bool {
	l, bi := m.locate(k)
	l.mu.Lock()
	removed := m.buckets[bi].Delete(k)
	if removed {
		m.count.Add(^uint64(0))
	}
	l.mu.Unlock()
	return removed
}

// Size reports the resident entry count; it may lag in-flight operations.
func (m *Map[K, V]) Size() uint64 { return m.count.Load() }

// Name identifies the variant in logs and CSV rows.
func (m *Map[K, V]) Name() string { return "Striped" }
