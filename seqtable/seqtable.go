// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: seqtable.go — unsynchronized chained table (speedup denominator)
//
// Purpose:
//   - The single-threaded baseline every speedup figure divides by, and the
//     correctness oracle the concurrent variants are validated against.
//
// ⚠️ Not safe for concurrent use. The benchmark only ever drives it with
//    one worker.
// ─────────────────────────────────────────────────────────────────────────────

package seqtable

import (
	"hashmark/bucket"
	"hashmark/constants"
	"hashmark/hashkey"
)

// Table is a fixed-geometry chained hash table with no guard at all.
type Table[K comparable, V any] struct {
	buckets []bucket.Chain[K, V]
	hash    hashkey.Func[K]
	count   uint64
}

// New builds a table with bucketCount chains (DefaultBuckets when the hint
// is non-positive).
func New[K comparable, V any](bucketCount int, hash hashkey.Func[K]) *Table[K, V] {
	if bucketCount <= 0 {
		bucketCount = constants.DefaultBuckets
	}
	return &Table[K, V]{
		buckets: make([]bucket.Chain[K, V], bucketCount),
		hash:    hash,
	}
}

func (t *Table[K, V]) index(k K) int {
	return int(t.hash(k) % uint64(len(t.buckets)))
}

// Insert stores (k, v); true means the key was new.
func (t *Table[K, V]) Insert(k K, v V) bool {
	if t.buckets[t.index(k)].Put(k, v) {
		t.count++
		return true
	}
	return false
}

// Search returns the value under k.
func (t *Table[K, V]) Search(k K) (V, bool) {
	return t.buckets[t.index(k)].Get(k)
}

// Remove deletes the entry under k.
func (t *Table[K, V]) Remove(k K) bool {
	if t.buckets[t.index(k)].Delete(k) {
		t.count--
		return true
	}
	return false
}

// Size reports the resident entry count.
func (t *Table[K, V]) Size() uint64 { return t.count }

// Name identifies the variant in logs and CSV rows.
func (t *Table[K, V]) Name() string { return "Sequential" }
