// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: agh.go — adaptive-granularity table: segments × stripe locks
//
// Purpose:
//   - Combines segment partitioning with intra-segment lock striping. The
//     segment layer bounds cross-socket coherence traffic; the stripe layer
//     lets several writers work one hot segment in parallel.
//
// Notes:
//   - The stripe pool size K is picked once at construction from the
//     expected thread count: K = nextPow2(T / AGHStripeFactor), clamped to
//     [1, AGHMaxStripes] and never above buckets-per-segment. It never
//     changes afterwards, so bucket→stripe stays a static many-to-one map
//     and the (segment, stripe) pair is a sound serialization unit.
//   - Bucket→stripe inside a segment is bucketIdx & (K−1); K is a power of
//     two, so neighbouring buckets land on different stripes.
//   - Buckets are distributed exactly (base + remainder), like the
//     segment-exact variant.
// ─────────────────────────────────────────────────────────────────────────────

package agh

import (
	"runtime"
	"sync"
	"sync/atomic"

	"hashmark/bucket"
	"hashmark/constants"
	"hashmark/hashkey"
	"hashmark/utils"
)

// paddedLock keeps each (segment, stripe) guard on its own cache line.
type paddedLock struct {
	mu sync.Mutex
	_  [constants.CacheLine - 8]byte
}

// seg owns a contiguous bucket slice and its private stripe pool.
type seg[K comparable, V any] struct {
	buckets    []bucket.Chain[K, V]
	stripes    []paddedLock
	stripeMask uint64
	_          [constants.CacheLine - 56]byte
}

// Map is the adaptive-granularity table.
type Map[K comparable, V any] struct {
	segments []seg[K, V]
	hash     hashkey.Func[K]
	count    atomic.Uint64
	total    int
	stripesK int
}

// chooseStripes sizes the per-segment stripe pool for an expected thread
// count, keeping K a power of two no larger than the segment itself.
func chooseStripes(bucketsPerSegment, expectedThreads int) int {
	k := utils.NextPow2(expectedThreads / constants.AGHStripeFactor)
	if k > constants.AGHMaxStripes {
		k = constants.AGHMaxStripes
	}
	for k > bucketsPerSegment && k > 1 {
		k >>= 1
	}
	if k < 1 {
		k = 1
	}
	return k
}

// New builds a table of constants.AGHSegmentCount segments with exact
// bucket distribution. expectedThreads sizes the stripe pools;
// expectedThreads ≤ 0 falls back to runtime.GOMAXPROCS(0).
func New[K comparable, V any](bucketCount, expectedThreads int, hash hashkey.Func[K]) *Map[K, V] {
	if bucketCount <= 0 {
		bucketCount = constants.DefaultBuckets
	}
	if bucketCount < constants.AGHSegmentCount {
		bucketCount = constants.AGHSegmentCount
	}
	if expectedThreads <= 0 {
		expectedThreads = runtime.GOMAXPROCS(0)
	}

	base := bucketCount / constants.AGHSegmentCount
	rem := bucketCount % constants.AGHSegmentCount

	m := &Map[K, V]{
		segments: make([]seg[K, V], constants.AGHSegmentCount),
		hash:     hash,
		total:    bucketCount,
	}
	for i := range m.segments {
		bps := base
		if i < rem {
			bps++
		}
		k := chooseStripes(bps, expectedThreads)
		m.segments[i].buckets = make([]bucket.Chain[K, V], bps)
		m.segments[i].stripes = make([]paddedLock, k)
		m.segments[i].stripeMask = uint64(k - 1)
		if i == 0 {
			m.stripesK = k
		}
	}
	return m
}

// EffectiveBuckets reports the bucket count actually allocated; it equals
// the (clamped) request.
func (m *Map[K, V]) EffectiveBuckets() int { return m.total }

// StripesPerSegment reports the stripe pool size of the widest segment.
func (m *Map[K, V]) StripesPerSegment() int { return m.stripesK }

// locate resolves a key to its segment, bucket index, and stripe guard.
func (m *Map[K, V]) locate(k K) (*seg[K, V], uint64, *paddedLock) {
	h := m.hash(k)
	s := &m.segments[h%uint64(len(m.segments))]
	bi := (h / uint64(len(m.segments))) % uint64(len(s.buckets))
	return s, bi, &s.stripes[bi&s.stripeMask]
}

// Insert stores (k, v) under the owning (segment, stripe) guard.
func (m *Map[K, V]) Insert(k K, v V) bool {
	s, bi, l := m.locate(k)
	l.mu.Lock()
	inserted := s.buckets[bi].Put(k, v)
	if inserted {
		m.count.Add(1)
	}
	l.mu.Unlock()
	return inserted
}

// Search returns the value under k.
func (m *Map[K, V]) Search(k K) (V, bool) {
	s, bi, l := m.locate(k)
	l.mu.Lock()
	v, ok := s.buckets[bi].Get(k)
	l.mu.Unlock()
	return v, ok
}

// Remove deletes the entry under k.
func (m *Map[K, V]) Remove(k K) bool {
	s, bi, l := m.locate(k)
	l.mu.Lock()
	removed := s.buckets[bi].Delete(k)
	if removed {
		m.count.Add(^uint64(0))
	}
	l.mu.Unlock()
	return removed
}

// Size reports the resident entry count; it may lag in-flight operations.
func (m *Map[K, V]) Size() uint64 { return m.count.Load() }

// Name identifies the variant in logs and CSV rows.
func (m *Map[K, V]) Name() string { return "AGH" }
