// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: workload.go — two-phase timed workload runner
//
// Purpose:
//   - Drives one table through prefill + mixed phases and times only the
//     mixed phase. Every variant runs the identical operation stream, so
//     rows differ in nothing but the synchronization discipline.
//
// Notes:
//   - Static range partitioning: worker t owns one contiguous chunk of the
//     iteration space, no queues, no stealing. Inter-worker state is the
//     table and its atomic counter, nothing else.
//   - Worker RNGs and hotset generators are seeded from (base seed, tid),
//     so a single-threaded run is bit-reproducible.
// ─────────────────────────────────────────────────────────────────────────────

package bench

import (
	"sync"
	"time"

	"hashmark/constants"
	"hashmark/hotset"
	"hashmark/table"
)

// Builder names a variant and constructs a fresh instance for one run.
// threads is the expected worker count (only the adaptive table uses it).
type Builder struct {
	Name string
	New  func(buckets, threads int) table.Map[int, int]
}

// parallelFor splits [0, n) into one contiguous chunk per worker and
// blocks until all workers return.
func parallelFor(threads, n int, body func(tid, lo, hi int)) {
	if threads < 1 {
		threads = 1
	}
	chunk := (n + threads - 1) / threads
	var wg sync.WaitGroup
	for t := 0; t < threads; t++ {
		lo := t * chunk
		if lo >= n {
			break
		}
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(tid, lo, hi int) {
			defer wg.Done()
			body(tid, lo, hi)
		}(t, lo, hi)
	}
	wg.Wait()
}

// RunWorkload executes the two-phase workload and returns the mixed-phase
// wall time in seconds.
//
// Phase 1 inserts keys [0, totalOps/2) in parallel; phase 2 runs the
// remaining operations, each a read with probability readRatio. Read keys
// come from the worker's hotset generator when skewed, else from the
// modular sequence i % initial. Writes append fresh keys above the
// prefilled range.
func RunWorkload(b Builder, threads, totalOps int, readRatio float64,
	skewed bool, buckets int, pHot, hotFrac float64) float64 {

	m := b.New(buckets, threads)

	initial := totalOps / 2
	if initial < 1 {
		initial = 1
	}
	mixed := totalOps - initial

	parallelFor(threads, initial, func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			m.Insert(i, i*2)
		}
	})

	hotN := int(float64(initial) * hotFrac)
	if hotN < 1 {
		hotN = 1
	}

	start := time.Now()
	parallelFor(threads, mixed, func(tid, lo, hi int) {
		coin := hotset.NewRand(hotset.MixSeed(constants.WorkloadSeed, tid))
		gen := hotset.New(initial, hotN, pHot, hotset.MixSeed(constants.HotsetSeed, tid))
		for i := lo; i < hi; i++ {
			if coin.Float64() < readRatio {
				key := i % initial
				if skewed {
					key = gen.Draw()
				}
				m.Search(key)
			} else {
				m.Insert(initial+i, i)
			}
		}
	})
	return time.Since(start).Seconds()
}
