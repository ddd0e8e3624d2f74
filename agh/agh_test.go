// Package agh tests cover stripe-pool sizing against the thread count and
// the exact bucket distribution across the wide segment fan-out.
package agh

import (
	"sync"
	"testing"

	"hashmark/constants"
	"hashmark/hashkey"
)

// -----------------------------------------------------------------------------
// ░░ Stripe Sizing ░░
// -----------------------------------------------------------------------------

func TestChooseStripes(t *testing.T) {
	cases := []struct {
		bps, threads, want int
	}{
		{64, 1, 1},    // T/factor rounds to zero → single stripe
		{64, 2, 1},    // nextPow2(1)
		{64, 4, 2},    // nextPow2(2)
		{64, 8, 4},    // nextPow2(4)
		{64, 16, 8},   // nextPow2(8)
		{64, 100, 32}, // nextPow2(50)=64, clamped to MaxStripes
		{64, 1024, constants.AGHMaxStripes},
		{2, 64, 2}, // never more stripes than buckets
		{1, 64, 1},
		{3, 16, 2}, // halves down but stays a power of two
	}
	for _, tc := range cases {
		if got := chooseStripes(tc.bps, tc.threads); got != tc.want {
			t.Fatalf("chooseStripes(bps=%d, T=%d) = %d, want %d",
				tc.bps, tc.threads, got, tc.want)
		}
	}
}

func TestStripeCountIsPowerOfTwo(t *testing.T) {
	for threads := 1; threads <= 128; threads++ {
		k := chooseStripes(64, threads)
		if k < 1 || k > constants.AGHMaxStripes || k&(k-1) != 0 {
			t.Fatalf("chooseStripes(64, %d) = %d not a clamped power of two", threads, k)
		}
	}
}

// -----------------------------------------------------------------------------
// ░░ Geometry ░░
// -----------------------------------------------------------------------------

func TestExactBucketDistribution(t *testing.T) {
	m := New[int, int](16384, 8, hashkey.Int[int]())
	if got := m.EffectiveBuckets(); got != 16384 {
		t.Fatalf("EffectiveBuckets = %d, want 16384", got)
	}
	total := 0
	for i := range m.segments {
		total += len(m.segments[i].buckets)
	}
	if total != 16384 {
		t.Fatalf("allocated %d buckets, want 16384", total)
	}
	if got := m.StripesPerSegment(); got != 4 {
		// T=8, factor 2 → nextPow2(4) = 4
		t.Fatalf("StripesPerSegment = %d, want 4", got)
	}
}

func TestHintClampedToSegmentCount(t *testing.T) {
	m := New[int, int](10, 4, hashkey.Int[int]())
	if got := m.EffectiveBuckets(); got != constants.AGHSegmentCount {
		t.Fatalf("EffectiveBuckets = %d, want %d", got, constants.AGHSegmentCount)
	}
}

// -----------------------------------------------------------------------------
// ░░ Hot-Segment Writers ░░
// -----------------------------------------------------------------------------

// All workers write one narrow key band; with striping the segment still
// accepts them all and loses nothing.
func TestHotBandWriters(t *testing.T) {
	m := New[int, int](4096, 8, hashkey.Int[int]())
	const workers, band = 8, 4096
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for k := w; k < band; k += workers {
				m.Insert(k, k)
			}
		}(w)
	}
	wg.Wait()
	if m.Size() != band {
		t.Fatalf("Size = %d, want %d", m.Size(), band)
	}
}

func BenchmarkInsertParallel(b *testing.B) {
	m := New[int, int](65536, 0, hashkey.Int[int]())
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			m.Insert(i, i)
			i++
		}
	})
}
