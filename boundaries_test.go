// SPDX-License-Identifier: MIT

package layeredbitmap_test

import (
	"testing"

	"github.com/nodascent/layeredbitmap"
)

// ---- Boundary behavior tests for the smallest/largest configs and the
// edges of the representable universe ----

func TestBoundary_SmallestConfig(t *testing.T) {
	idx, err := layeredbitmap.New(32, 5)
	if err != nil {
		t.Fatalf("New(32, 5): %v", err)
	}
	if idx.Universe() != 32*32*32*32*32 {
		t.Fatalf("Universe() = %d, want %d", idx.Universe(), 32*32*32*32*32)
	}
}

func TestBoundary_LargestConfig(t *testing.T) {
	idx, err := layeredbitmap.New(64, 8)
	if err != nil {
		t.Fatalf("New(64, 8): %v", err)
	}
	var want uint64 = 1
	for i := 0; i < 8; i++ {
		want *= 64
	}
	if idx.Universe() != want {
		t.Fatalf("Universe() = %d, want %d", idx.Universe(), want)
	}
}

func TestBoundary_FirstAndLastPosition(t *testing.T) {
	idx, err := layeredbitmap.New(32, 5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	last := idx.Universe() - 1

	if err := idx.Set(0); err != nil {
		t.Fatalf("Set(0): %v", err)
	}
	if err := idx.Set(last); err != nil {
		t.Fatalf("Set(%d): %v", last, err)
	}

	if v, _ := idx.Get(0); v != 1 {
		t.Fatalf("Get(0) = %d, want 1", v)
	}
	if v, _ := idx.Get(last); v != 1 {
		t.Fatalf("Get(%d) = %d, want 1", last, v)
	}

	next, err := idx.FindNext(0)
	if err != nil {
		t.Fatalf("FindNext(0): %v", err)
	}
	if next != int64(last) {
		t.Fatalf("FindNext(0) = %d, want %d", next, last)
	}

	prev, err := idx.FindPrevious(last)
	if err != nil {
		t.Fatalf("FindPrevious(%d): %v", last, err)
	}
	if prev != 0 {
		t.Fatalf("FindPrevious(%d) = %d, want 0", last, prev)
	}
}

func TestBoundary_UniverseIsExclusive(t *testing.T) {
	idx, err := layeredbitmap.New(32, 5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := idx.Set(idx.Universe()); err == nil {
		t.Fatalf("Set(Universe()) should fail, universe is an exclusive bound")
	}
}

func TestBoundary_SingleMemberHasNoNeighbors(t *testing.T) {
	idx, err := layeredbitmap.New(32, 5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := idx.Set(1_234_567); err != nil {
		t.Fatalf("Set: %v", err)
	}

	next, _ := idx.FindNext(1_234_567)
	if next != -1 {
		t.Fatalf("FindNext(sole member) = %d, want -1", next)
	}
	prev, _ := idx.FindPrevious(1_234_567)
	if prev != -1 {
		t.Fatalf("FindPrevious(sole member) = %d, want -1", prev)
	}
}
