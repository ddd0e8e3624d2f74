// Package fine tests cover per-bucket locking and the Increment merge the
// word-count demo depends on, in both bucket layouts.
package fine

import (
	"strconv"
	"sync"
	"testing"

	"hashmark/hashkey"
)

// -----------------------------------------------------------------------------
// ░░ Parallel Disjoint Inserts ░░
// -----------------------------------------------------------------------------

// Four workers each insert 1000 unique keys (worker w owns w·1000..+999);
// afterwards every key must search to key·10 and Size must be 4000.
func TestFourWorkersThousandKeysEach(t *testing.T) {
	m := New[int, int](1024, hashkey.Int[int]())
	const workers, perWorker = 4, 1000
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				k := w*perWorker + i
				m.Insert(k, k*10)
			}
		}(w)
	}
	wg.Wait()
	if m.Size() != workers*perWorker {
		t.Fatalf("Size = %d, want %d", m.Size(), workers*perWorker)
	}
	for k := 0; k < workers*perWorker; k++ {
		if v, ok := m.Search(k); !ok || v != k*10 {
			t.Fatalf("Search(%d) = %d,%v ; want %d,true", k, v, ok, k*10)
		}
	}
}

// -----------------------------------------------------------------------------
// ░░ Increment Atomicity ░░
// -----------------------------------------------------------------------------

// Workers hammer a small shared key set with increments; every lost update
// would show up as a short final count.
func TestIncrementNeverLosesUpdates(t *testing.T) {
	m := New[string, int](64, hashkey.Str[string]())
	const workers, rounds, keys = 8, 2000, 5
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				Increment(m, "k"+strconv.Itoa((w+i)%keys), 1)
			}
		}(w)
	}
	wg.Wait()
	total := 0
	for k := 0; k < keys; k++ {
		v, ok := m.Search("k" + strconv.Itoa(k))
		if !ok {
			t.Fatalf("key %d missing", k)
		}
		total += v
	}
	if total != workers*rounds {
		t.Fatalf("sum of counts = %d, want %d", total, workers*rounds)
	}
	if m.Size() != keys {
		t.Fatalf("Size = %d, want %d", m.Size(), keys)
	}
}

func TestIncrementInsertsOnAbsent(t *testing.T) {
	m := New[int, int](16, hashkey.Int[int]())
	if !Increment(m, 7, 3) {
		t.Fatal("first Increment must insert")
	}
	if Increment(m, 7, 4) {
		t.Fatal("second Increment must merge")
	}
	if v, _ := m.Search(7); v != 7 {
		t.Fatalf("value = %d, want 7", v)
	}
}

// -----------------------------------------------------------------------------
// ░░ Padded Layout ░░
// -----------------------------------------------------------------------------

func TestPaddedMirrorsUnpadded(t *testing.T) {
	p := NewPadded[int, int](128, hashkey.Int[int]())
	for k := 0; k < 300; k++ {
		if !p.Insert(k, k) {
			t.Fatalf("Insert(%d) must report new", k)
		}
	}
	if p.Insert(0, 99) {
		t.Fatal("duplicate insert must report overwrite")
	}
	if v, _ := p.Search(0); v != 99 {
		t.Fatal("overwrite not visible")
	}
	if !p.Remove(0) || p.Remove(0) {
		t.Fatal("Remove must succeed once")
	}
	if p.Size() != 299 {
		t.Fatalf("Size = %d, want 299", p.Size())
	}
}

func TestIncrementPaddedUnderContention(t *testing.T) {
	p := NewPadded[string, int](64, hashkey.Str[string]())
	const workers, rounds = 4, 5000
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				IncrementPadded(p, "shared", 1)
			}
		}()
	}
	wg.Wait()
	if v, _ := p.Search("shared"); v != workers*rounds {
		t.Fatalf("count = %d, want %d", v, workers*rounds)
	}
}

// -----------------------------------------------------------------------------
// ░░ Benchmarks ░░
// -----------------------------------------------------------------------------

func BenchmarkInsertParallel(b *testing.B) {
	m := New[int, int](65536, hashkey.Int[int]())
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			m.Insert(i, i)
			i++
		}
	})
}

func BenchmarkPaddedInsertParallel(b *testing.B) {
	m := NewPadded[int, int](65536, hashkey.Int[int]())
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			m.Insert(i, i)
			i++
		}
	})
}
