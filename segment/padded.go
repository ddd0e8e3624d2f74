// padded.go
//
// Cache-line-padded segment variant.  Same floor bucket split as Map; the
// segment struct is padded so neighbouring segment guards live on distinct
// cache lines and lock traffic in one segment stays off the others.

package segment

import (
	"sync"
	"sync/atomic"

	"hashmark/bucket"
	"hashmark/constants"
	"hashmark/hashkey"
)

// paddedSeg fills a full cache line: mutex (8B) + slice header (24B) + pad.
type paddedSeg[K comparable, V any] struct {
	mu      sync.Mutex
	buckets []bucket.Chain[K, V]
	_       [constants.CacheLine - 32]byte
}

// PaddedMap is Map with each segment on its own cache line.
type PaddedMap[K comparable, V any] struct {
	segments []paddedSeg[K, V]
	bps      uint64
	hash     hashkey.Func[K]
	count    atomic.Uint64
}

// NewPadded builds the padded variant; geometry matches New exactly.
func NewPadded[K comparable, V any](bucketCount int, hash hashkey.Func[K]) *PaddedMap[K, V] {
	if bucketCount <= 0 {
		bucketCount = constants.DefaultBuckets
	}
	bps := bucketCount / constants.SegmentCount
	if bps == 0 {
		bps = 1
	}
	m := &PaddedMap[K, V]{
		segments: make([]paddedSeg[K, V], constants.SegmentCount),
		bps:      uint64(bps),
		hash:     hash,
	}
	for i := range m.segments {
		m.segments[i].buckets = make([]bucket.Chain[K, V], bps)
	}
	return m
}

// EffectiveBuckets reports the bucket count actually allocated.
func (m *PaddedMap[K, V]) EffectiveBuckets() int {
	return len(m.segments) * int(m.bps)
}

func (m *PaddedMap[K, V]) locate(k K) (*paddedSeg[K, V], uint64) {
	h := m.hash(k)
	s := &m.segments[h%uint64(len(m.segments))]
	return s, (h / uint64(len(m.segments))) % m.bps
}

func (m *PaddedMap[K, V]) Insert(k K, v V) bool {
	s, bi := m.locate(k)
	s.mu.Lock()
	inserted := s.buckets[bi].Put(k, v)
	if inserted {
		m.count.Add(1)
	}
	s.mu.Unlock()
	return inserted
}

func (m *PaddedMap[K, V]) Search(k K) (V, bool) {
	s, bi := m.locate(k)
	s.mu.Lock()
	v, ok := s.buckets[bi].Get(k)
	s.mu.Unlock()
	return v, ok
}

func (m *PaddedMap[K, V]) Remove(k K) bool {
	s, bi := m.locate(k)
	s.mu.Lock()
	removed := s.buckets[bi].Delete(k)
	if removed {
		m.count.Add(^uint64(0))
	}
	s.mu.Unlock()
	return removed
}

func (m *PaddedMap[K, V]) Size() uint64 { return m.count.Load() }

func (m *PaddedMap[K, V]) Name() string { return "Segment-Padded" }
