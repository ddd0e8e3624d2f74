// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: segment.go — fixed segments, one guard per sub-table
//
// Purpose:
//   - Partitions the table into SegmentCount independent sub-tables, each
//     owning a contiguous bucket slice and a single guard.
//   - The serialization unit is the whole segment: wider than a bucket,
//     far narrower than the table.
//
// Notes:
//   - Segment index eats the low hash bits (h % S); the bucket index inside
//     a segment eats the bits above them ((h / S) % bps). With one modulus
//     feeding both, every bucket beyond the first per segment would sit
//     idle — the div is the anti-aliasing.
//   - Buckets per segment is ⌊B/S⌋ (min 1), so the effective bucket count
//     rounds down from the hint. ExactMap keeps the hint exact.
// ─────────────────────────────────────────────────────────────────────────────

package segment

import (
	"sync"
	"sync/atomic"

	"hashmark/bucket"
	"hashmark/constants"
	"hashmark/hashkey"
)

// seg is one sub-table: its guard plus its bucket slice.
type seg[K comparable, V any] struct {
	mu      sync.Mutex
	buckets []bucket.Chain[K, V]
}

// Map is the plain segment table: S fixed segments, floor bucket split.
type Map[K comparable, V any] struct {
	segments []seg[K, V]
	bps      uint64
	hash     hashkey.Func[K]
	count    atomic.Uint64
}

// New builds a table of constants.SegmentCount segments. Each segment gets
// ⌊bucketCount/S⌋ buckets, at least one; the effective total is S×bps.
func New[K comparable, V any](bucketCount int, hash hashkey.Func[K]) *Map[K, V] {
	if bucketCount <= 0 {
		bucketCount = constants.DefaultBuckets
	}
	bps := bucketCount / constants.SegmentCount
	if bps == 0 {
		bps = 1
	}
	m := &Map[K, V]{
		segments: make([]seg[K, V], constants.SegmentCount),
		bps:      uint64(bps),
		hash:     hash,
	}
	for i := range m.segments {
		m.segments[i].buckets = make([]bucket.Chain[K, V], bps)
	}
	return m
}

// EffectiveBuckets reports the bucket count actually allocated.
func (m *Map[K, V]) EffectiveBuckets() int {
	return len(m.segments) * int(m.bps)
}

func (m *Map[K, V]) locate(k K) (*seg[K, V], uint64) {
	h := m.hash(k)
	s := &m.segments[h%uint64(len(m.segments))]
	return s, (h / uint64(len(m.segments))) % m.bps
}

// Insert stores (k, v) under the owning segment's guard.
func (m *Map[K, V]) Insert(k K, v V) bool {
	s, bi := m.locate(k)
	s.mu.Lock()
	inserted := s.buckets[bi].Put(k, v)
	if inserted {
		m.count.Add(1)
	}
	s.mu.Unlock()
	return inserted
}

// Search returns the value under k.
func (m *Map[K, V]) Search(k K) (V, bool) {
	s, bi := m.locate(k)
	s.mu.Lock()
	v, ok := s.buckets[bi].Get(k)
	s.mu.Unlock()
	return v, ok
}

// Remove deletes the entry under k.
func (m *Map[K, V]) Remove(k K) bool {
	s, bi := m.locate(k)
	s.mu.Lock()
	removed := s.buckets[bi].Delete(k)
	if removed {
		m.count.Add(^uint64(0))
	}
	s.mu.Unlock()
	return removed
}

// Size reports the resident entry count; it may lag in-flight operations.
func (m *Map[K, V]) Size() uint64 { return m.count.Load() }

// Name identifies the variant in logs and CSV rows.
func (m *Map[K, V]) Name() string { return "Segment" }
