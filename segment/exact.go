// exact.go
//
// Exact-distribution segment variant.  The floor split in Map silently
// rounds the hint down to S×⌊B/S⌋; ExactMap hands the first B mod S
// segments one extra bucket so the effective count equals the request.
// Useful when a sweep compares bucket counts across variants and the
// counts have to mean the same thing everywhere.

package segment

import (
	"sync/atomic"

	"hashmark/bucket"
	"hashmark/constants"
	"hashmark/hashkey"
)

// ExactMap distributes ⌊B/S⌋ or ⌈B/S⌉ buckets per segment as needed.
type ExactMap[K comparable, V any] struct {
	segments []paddedSeg[K, V]
	hash     hashkey.Func[K]
	count    atomic.Uint64
	total    int
}

// NewExact builds a segment table whose effective bucket count equals
// bucketCount exactly (after the hint is clamped to at least S).
func NewExact[K comparable, V any](bucketCount int, hash hashkey.Func[K]) *ExactMap[K, V] {
	if bucketCount <= 0 {
		bucketCount = constants.DefaultBuckets
	}
	if bucketCount < constants.SegmentCount {
		bucketCount = constants.SegmentCount
	}
	base := bucketCount / constants.SegmentCount
	rem := bucketCount % constants.SegmentCount
	m := &ExactMap[K, V]{
		segments: make([]paddedSeg[K, V], constants.SegmentCount),
		hash:     hash,
		total:    bucketCount,
	}
	for i := range m.segments {
		bps := base
		if i < rem {
			bps++
		}
		m.segments[i].buckets = make([]bucket.Chain[K, V], bps)
	}
	return m
}

// EffectiveBuckets reports the bucket count actually allocated; for this
// variant it equals the (clamped) request.
func (m *ExactMap[K, V]) EffectiveBuckets() int { return m.total }

func (m *ExactMap[K, V]) locate(k K) (*paddedSeg[K, V], uint64) {
	h := m.hash(k)
	s := &m.segments[h%uint64(len(m.segments))]
	// bps varies per segment here, so the modulus comes from the slice.
	return s, (h / uint64(len(m.segments))) % uint64(len(s.buckets))
}

func (m *ExactMap[K, V]) Insert(k K, v V) bool {
	s, bi := m.locate(k)
	s.mu.Lock()
	inserted := s.buckets[bi].Put(k, v)
	if inserted {
		m.count.Add(1)
	}
	s.mu.Unlock()
	return inserted
}

func (m *ExactMap[K, V]) Search(k K) (V, bool) {
	s, bi := m.locate(k)
	s.mu.Lock()
	v, ok := s.buckets[bi].Get(k)
	s.mu.Unlock()
	return v, ok
}

func (m *ExactMap[K, V]) Remove(k K) bool {
	s, bi := m.locate(k)
	s.mu.Lock()
	removed := s.buckets[bi].Delete(k)
	if removed {
		m.count.Add(^uint64(0))
	}
	s.mu.Unlock()
	return removed
}

func (m *ExactMap[K, V]) Size() uint64 { return m.count.Load() }

func (m *ExactMap[K, V]) Name() string { return "Segment-Exact" }
