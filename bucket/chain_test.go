// Package bucket tests cover the chain protocol every locked table builds
// on: uniqueness per key, overwrite-in-place, swap-with-last deletion, and
// the guarded-merge Add helper.
package bucket

import "testing"

// -----------------------------------------------------------------------------
// ░░ Put / Get Semantics ░░
// -----------------------------------------------------------------------------

func TestPutNewAndOverwrite(t *testing.T) {
	var c Chain[int, int]
	if !c.Put(1, 100) {
		t.Fatal("first Put must report insertion")
	}
	if c.Put(1, 150) {
		t.Fatal("second Put of same key must report overwrite")
	}
	if v, ok := c.Get(1); !ok || v != 150 {
		t.Fatalf("Get(1) = %d,%v ; want 150,true", v, ok)
	}
	if c.Len() != 1 {
		t.Fatalf("Len = %d after overwrite, want 1", c.Len())
	}
}

func TestGetMiss(t *testing.T) {
	var c Chain[string, int]
	c.Put("a", 1)
	if _, ok := c.Get("b"); ok {
		t.Fatal("Get of absent key must miss")
	}
}

// -----------------------------------------------------------------------------
// ░░ Uniqueness Under Many Keys ░░
// -----------------------------------------------------------------------------

func TestManyKeysStayUnique(t *testing.T) {
	var c Chain[int, int]
	for round := 0; round < 3; round++ {
		for k := 0; k < 64; k++ {
			c.Put(k, k*10+round)
		}
	}
	if c.Len() != 64 {
		t.Fatalf("Len = %d, want 64 (one entry per key)", c.Len())
	}
	for k := 0; k < 64; k++ {
		if v, ok := c.Get(k); !ok || v != k*10+2 {
			t.Fatalf("Get(%d) = %d,%v ; want %d,true", k, v, ok, k*10+2)
		}
	}
}

// -----------------------------------------------------------------------------
// ░░ Delete (swap-with-last) ░░
// -----------------------------------------------------------------------------

func TestDelete(t *testing.T) {
	var c Chain[int, int]
	for k := 0; k < 8; k++ {
		c.Put(k, k)
	}
	if !c.Delete(3) {
		t.Fatal("Delete(3) must succeed")
	}
	if c.Delete(3) {
		t.Fatal("second Delete(3) must fail")
	}
	if c.Len() != 7 {
		t.Fatalf("Len = %d, want 7", c.Len())
	}
	// the swapped tail entry must remain reachable
	for k := 0; k < 8; k++ {
		_, ok := c.Get(k)
		if want := k != 3; ok != want {
			t.Fatalf("Get(%d) found=%v, want %v", k, ok, want)
		}
	}
}

func TestDeleteEmpty(t *testing.T) {
	var c Chain[int, int]
	if c.Delete(1) {
		t.Fatal("Delete on empty chain must fail")
	}
}

// -----------------------------------------------------------------------------
// ░░ Add (merge helper) ░░
// -----------------------------------------------------------------------------

func TestAdd(t *testing.T) {
	var c Chain[string, int]
	if !Add(&c, "w", 1) {
		t.Fatal("first Add must insert")
	}
	for i := 0; i < 9; i++ {
		if Add(&c, "w", 1) {
			t.Fatal("subsequent Add must merge, not insert")
		}
	}
	if v, _ := c.Get("w"); v != 10 {
		t.Fatalf("accumulated value = %d, want 10", v)
	}
	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
}
