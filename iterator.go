// SPDX-License-Identifier: MIT

package layeredbitmap

import "iter"

// TraverseForward returns a lazy, finite sequence of member positions
// at or after start, in strictly ascending order. It is a thin
// consumer of Index: it holds no tree state of its own, repeatedly
// calling FindNext and feeding each result back in as the next cursor
// until -1 is observed.
//
// start itself is included first if it is a member; every subsequent
// value is the smallest member strictly greater than the one before
// it. The range-over-func sequence stops as soon as its consumer
// returns false from yield, so a caller can break out of a
// for range without draining the whole index.
func TraverseForward(idx Index, start uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		if start < idx.Universe() {
			if v, err := idx.Get(start); err == nil && v == 1 {
				if !yield(start) {
					return
				}
			}
		}

		pos := start
		for {
			next, err := idx.FindNext(pos)
			if err != nil || next < 0 {
				return
			}
			if !yield(uint64(next)) {
				return
			}
			pos = uint64(next)
		}
	}
}

// TraverseBackward returns a lazy, finite sequence of member positions
// at or before start, in strictly descending order; it is
// TraverseForward's mirror, built on FindPrevious.
func TraverseBackward(idx Index, start uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		if v, err := idx.Get(start); err == nil && v == 1 {
			if !yield(start) {
				return
			}
		}

		pos := start
		for {
			prev, err := idx.FindPrevious(pos)
			if err != nil || prev < 0 {
				return
			}
			if !yield(uint64(prev)) {
				return
			}
			pos = uint64(prev)
		}
	}
}

// CollectForward materializes TraverseForward(idx, start) into a slice.
func CollectForward(idx Index, start uint64) []uint64 {
	out := make([]uint64, 0)
	for v := range TraverseForward(idx, start) {
		out = append(out, v)
	}
	return out
}

// CollectBackward materializes TraverseBackward(idx, start) into a
// slice.
func CollectBackward(idx Index, start uint64) []uint64 {
	out := make([]uint64, 0)
	for v := range TraverseBackward(idx, start) {
		out = append(out, v)
	}
	return out
}
