// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: lockfree.go — CAS-chain buckets, no guards anywhere
//
// Purpose:
//   - Per-bucket singly linked lists with an atomic head pointer; writers
//     synchronize only through CAS at the head, readers never block.
//
// Notes:
//   - A successful head CAS publishes the new node: the node's fields are
//     written before the CAS, and traversals load head/next with atomic
//     acquire semantics.
//   - Duplicate-key insert overwrites the node's value with a plain store.
//     Concurrent readers of a wider-than-word V could observe a torn
//     value; int-like values are the supported contract.
//   - Mid-chain removal stores into prev.next without serializing against
//     writers of prev.next. Concurrent removes mixed with traversals of
//     the same bucket are UNSUPPORTED; the tests never mix them, and a
//     general-purpose caller must layer a marked-pointer or epoch scheme
//     on top. The GC stands in for node reclamation, so the unsupported
//     interleavings lose updates but never touch freed memory.
// ─────────────────────────────────────────────────────────────────────────────

package lockfree

import (
	"sync/atomic"

	"hashmark/constants"
	"hashmark/hashkey"
)

// node is one chained entry; next is only ever written by its owner before
// publication or by a successful unlink.
type node[K comparable, V any] struct {
	key   K
	value V
	next  atomic.Pointer[node[K, V]]
}

// head isolates each bucket's chain head on its own cache line; the CAS
// traffic of one bucket must not invalidate its neighbours.
type head[K comparable, V any] struct {
	ptr atomic.Pointer[node[K, V]]
	_   [constants.CacheLine - 8]byte
}

// Map is the lock-free table.
type Map[K comparable, V any] struct {
	buckets []head[K, V]
	hash    hashkey.Func[K]
	count   atomic.Uint64
}

// New builds a table of bucketCount CAS-guarded chains.
func New[K comparable, V any](bucketCount int, hash hashkey.Func[K]) *Map[K, V] {
	if bucketCount <= 0 {
		bucketCount = constants.DefaultBuckets
	}
	return &Map[K, V]{
		buckets: make([]head[K, V], bucketCount),
		hash:    hash,
	}
}

func (m *Map[K, V]) bucketFor(k K) *head[K, V] {
	return &m.buckets[m.hash(k)%uint64(len(m.buckets))]
}

// Insert stores (k, v); true means a new node was linked. The walk and the
// head CAS repeat until the chain is observed unchanged across the swap.
func (m *Map[K, V]) Insert(k K, v V) bool {
	b := m.bucketFor(k)
	var fresh *node[K, V]
	for {
		observed := b.ptr.Load()

		for cur := observed; cur != nil; cur = cur.next.Load() {
			if cur.key == k {
				// Duplicate: overwrite in place. Plain store — see the
				// torn-value caveat in the package header.
				cur.value = v
				return false
			}
		}

		if fresh == nil {
			fresh = &node[K, V]{key: k, value: v}
		}
		fresh.next.Store(observed)
		if b.ptr.CompareAndSwap(observed, fresh) {
			m.count.Add(1)
			return true
		}
		// Lost the race: someone else moved the head. Re-walk, since the
		// winner may have linked exactly our key.
	}
}

// Search walks the chain without ever blocking.
func (m *Map[K, V]) Search(k K) (V, bool) {
	for cur := m.bucketFor(k).ptr.Load(); cur != nil; cur = cur.next.Load() {
		if cur.key == k {
			return cur.value, true
		}
	}
	var zero V
	return zero, false
}

// Remove unlinks the entry under k. Head removal is a CAS retried on
// failure; mid-chain removal is a plain store into prev.next (see the
// package header for what that does and does not support).
func (m *Map[K, V]) Remove(k K) bool {
	b := m.bucketFor(k)
	for {
		observed := b.ptr.Load()
		var prev *node[K, V]
		cur := observed

		for cur != nil {
			if cur.key == k {
				next := cur.next.Load()
				if prev == nil {
					if !b.ptr.CompareAndSwap(observed, next) {
						break // head moved under us; retry from the top
					}
				} else {
					prev.next.Store(next)
				}
				m.count.Add(^uint64(0))
				return true
			}
			prev = cur
			cur = cur.next.Load()
		}

		if cur == nil {
			return false
		}
	}
}

// Size reports the resident entry count; it may lag in-flight operations.
func (m *Map[K, V]) Size() uint64 { return m.count.Load() }

// Name identifies the variant in logs and CSV rows.
func (m *Map[K, V]) Name() string { return "Lock-Free" }
