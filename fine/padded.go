// padded.go
//
// Cache-line-padded sibling of Map.  Identical locking discipline; the only
// change is bucket layout.  Each guarded chain is padded out to one full
// cache line so two threads hammering adjacent buckets never invalidate
// each other's line just by taking their own locks.

package fine

import (
	"sync"
	"sync/atomic"

	"hashmark/bucket"
	"hashmark/constants"
	"hashmark/hashkey"
)

// paddedChain fills a whole cache line: mutex (8B) + slice header (24B)
// + 32B of padding. The pad sits on the containing struct, not the lock
// field, so the alignment survives slice element layout.
type paddedChain[K comparable, V any] struct {
	mu    sync.Mutex
	chain bucket.Chain[K, V]
	_     [constants.CacheLine - 32]byte
}

// PaddedMap is Map with one bucket per cache line.
type PaddedMap[K comparable, V any] struct {
	buckets []paddedChain[K, V]
	hash    hashkey.Func[K]
	count   atomic.Uint64
}

// NewPadded builds the padded variant with bucketCount guarded chains.
func NewPadded[K comparable, V any](bucketCount int, hash hashkey.Func[K]) *PaddedMap[K, V] {
	if bucketCount <= 0 {
		bucketCount = constants.DefaultBuckets
	}
	return &PaddedMap[K, V]{
		buckets: make([]paddedChain[K, V], bucketCount),
		hash:    hash,
	}
}

func (m *PaddedMap[K, V]) bucketFor(k K) *paddedChain[K, V] {
	return &m.buckets[m.hash(k)%uint64(len(m.buckets))]
}

func (m *PaddedMap[K, V]) Insert(k K, v V) bool {
	b := m.bucketFor(k)
	b.mu.Lock()
	inserted := b.chain.Put(k, v)
	if inserted {
		m.count.Add(1)
	}
	b.mu.Unlock()
	return inserted
}

func (m *PaddedMap[K, V]) Search(k K) (V, bool) {
	b := m.bucketFor(k)
	b.mu.Lock()
	v, ok := b.chain.Get(k)
	b.mu.Unlock()
	return v, ok
}

func (m *PaddedMap[K, V]) Remove(k K) bool {
	b := m.bucketFor(k)
	b.mu.Lock()
	removed := b.chain.Delete(k)
	if removed {
		m.count.Add(^uint64(0))
	}
	b.mu.Unlock()
	return removed
}

func (m *PaddedMap[K, V]) Size() uint64 { return m.count.Load() }

func (m *PaddedMap[K, V]) Name() string { return "Fine-Padded" }

// IncrementPadded is Increment for the padded layout.
func IncrementPadded[K comparable, V bucket.Addable](m *PaddedMap[K, V], k K, delta V) bool {
	b := m.bucketFor(k)
	b.mu.Lock()
	inserted := bucket.Add(&b.chain, k, delta)
	if inserted {
		m.count.Add(1)
	}
	b.mu.Unlock()
	return inserted
}
