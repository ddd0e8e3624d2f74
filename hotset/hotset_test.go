// Package hotset tests validate the two-band split, range invariants, and
// seed determinism the benchmark's reproducibility rests on.
package hotset

import "testing"

// -----------------------------------------------------------------------------
// ░░ Band Proportion ░░
// -----------------------------------------------------------------------------

// With p_hot=0.9 over 100k draws the hot-band count must land inside
// [89k, 91k]; splitmix64 is far tighter than that in practice.
func TestHotBandProportion(t *testing.T) {
	g := New(10000, 1000, 0.9, 12345)
	hot := 0
	for i := 0; i < 100_000; i++ {
		if g.Draw() < 1000 {
			hot++
		}
	}
	if hot < 89_000 || hot > 91_000 {
		t.Fatalf("hot draws = %d, want within [89000, 91000]", hot)
	}
}

func TestAllHotWhenBandCoversUniverse(t *testing.T) {
	g := New(100, 100, 0.0, 7)
	for i := 0; i < 1000; i++ {
		if k := g.Draw(); k < 0 || k >= 100 {
			t.Fatalf("draw %d out of universe", k)
		}
	}
}

// -----------------------------------------------------------------------------
// ░░ Range Invariant ░░
// -----------------------------------------------------------------------------

func TestDrawNeverEscapesUniverse(t *testing.T) {
	cases := []struct {
		universe, hotN int
		pHot           float64
	}{
		{1, 1, 0.5},
		{2, 1, 0.9},
		{10, 3, 0.0},
		{10, 3, 1.0},
		{10000, 1000, 0.7},
	}
	for _, tc := range cases {
		g := New(tc.universe, tc.hotN, tc.pHot, 99)
		for i := 0; i < 10_000; i++ {
			if k := g.Draw(); k < 0 || k >= tc.universe {
				t.Fatalf("U=%d H=%d p=%v: draw %d out of range",
					tc.universe, tc.hotN, tc.pHot, k)
			}
		}
	}
}

func TestClampDegenerateConfig(t *testing.T) {
	// hotN larger than the universe and non-positive sizes must not panic.
	g := New(0, 0, 0.9, 1)
	for i := 0; i < 100; i++ {
		if k := g.Draw(); k != 0 {
			t.Fatalf("draw %d from the singleton universe", k)
		}
	}
	g = New(5, 50, 0.9, 1)
	for i := 0; i < 100; i++ {
		if k := g.Draw(); k < 0 || k >= 5 {
			t.Fatalf("draw %d escaped clamped universe", k)
		}
	}
}

// -----------------------------------------------------------------------------
// ░░ Determinism ░░
// -----------------------------------------------------------------------------

func TestSameSeedSameSequence(t *testing.T) {
	a := New(10000, 1000, 0.9, 42)
	b := New(10000, 1000, 0.9, 42)
	for i := 0; i < 10_000; i++ {
		if a.Draw() != b.Draw() {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
}

func TestDistinctSeedsDiverge(t *testing.T) {
	a := New(10000, 1000, 0.9, 1)
	b := New(10000, 1000, 0.9, 2)
	same := 0
	for i := 0; i < 1000; i++ {
		if a.Draw() == b.Draw() {
			same++
		}
	}
	if same > 500 {
		t.Fatalf("%d/1000 draws equal across seeds; streams correlated", same)
	}
}

func TestMixSeedSeparatesWorkers(t *testing.T) {
	seen := make(map[uint64]bool)
	for tid := 0; tid < 64; tid++ {
		s := MixSeed(0xC0FFEE, tid)
		if seen[s] {
			t.Fatalf("worker %d got a duplicate seed", tid)
		}
		seen[s] = true
	}
}

// -----------------------------------------------------------------------------
// ░░ PRNG Basics ░░
// -----------------------------------------------------------------------------

func TestFloat64Range(t *testing.T) {
	r := NewRand(3)
	for i := 0; i < 100_000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 = %v out of [0, 1)", f)
		}
	}
}

func BenchmarkDraw(b *testing.B) {
	g := New(1_000_000, 100_000, 0.9, 12345)
	var sink int
	for i := 0; i < b.N; i++ {
		sink ^= g.Draw()
	}
	_ = sink
}
