// SPDX-License-Identifier: MIT

// Package bitops implements the word-level bit primitives the layered
// bitmap index is built on: locating the next or previous set bit
// inside a single fixed-width word, and the handful of test/set/
// popcount helpers the node and tree layers build on top of them.
//
// NextSet isolates the lowest set bit at or beyond a given position
// using two's-complement masking (clear everything below the position,
// then isolate the lowest remaining set bit with b & -b); PreviousSet
// masks off everything at or above the position and keeps the highest
// remaining bit. Both report the bit as a bit-length rather than a
// shift count, matching the
// find_next/find_previous, 1-based-result convention the index
// requires.
package bitops

import "math/bits"

// Word is the set of machine-word types a node's bitmap may be backed
// by. The tree's W is pinned at construction to either 32 or 64 bits;
// New rejects anything else before a single node is allocated.
type Word interface {
	~uint32 | ~uint64
}

// Width reports the bit width of W: 32 or 64.
func Width[W Word]() int {
	var zero W
	switch any(zero).(type) {
	case uint32:
		return 32
	case uint64:
		return 64
	default:
		panic("bitops: unsupported word type")
	}
}

func bitLen[W Word](x W) int {
	switch v := any(x).(type) {
	case uint32:
		return bits.Len32(v)
	case uint64:
		return bits.Len64(v)
	default:
		panic("bitops: unsupported word type")
	}
}

func onesCount[W Word](x W) int {
	switch v := any(x).(type) {
	case uint32:
		return bits.OnesCount32(v)
	case uint64:
		return bits.OnesCount64(v)
	default:
		panic("bitops: unsupported word type")
	}
}

// Test reports whether bit i of b is set. i must be in [0, Width[W]()).
func Test[W Word](b W, i int) bool {
	return b&(W(1)<<uint(i)) != 0
}

// SetBit sets bit i of *b to 1 if v != 0, otherwise clears it.
func SetBit[W Word](b *W, i int, v int) {
	if v != 0 {
		*b |= W(1) << uint(i)
	} else {
		*b &^= W(1) << uint(i)
	}
}

// PopcountBelow returns the number of set bits of b at indices strictly
// less than i. It is the rank function behind the popcount-compressed
// sparse child slice: a bit's rank is the slot it (or its absent-child
// slot) would occupy in that slice.
func PopcountBelow[W Word](b W, i int) int {
	if i <= 0 {
		return 0
	}
	if i >= Width[W]() {
		return onesCount(b)
	}
	mask := (W(1) << uint(i)) - 1
	return onesCount(b & mask)
}

// NextSet returns the 1-based position of the least-significant set bit
// of b at a 0-based index >= p, or -1 if no such bit exists.
//
// The 1-based convention is preserved verbatim from the source: callers
// subtract 1 from a positive result to recover the 0-based child or bit
// index it names.
func NextSet[W Word](b W, p int) int {
	if p < 0 {
		p = 0
	}
	if p >= Width[W]() {
		return -1
	}
	mask := ^((W(1) << uint(p)) - 1)
	masked := b & mask
	if masked == 0 {
		return -1
	}
	// two's-complement lowest-set-bit isolation
	lsb := masked & -masked
	return bitLen(lsb)
}

// PreviousSet returns the 1-based position of the most-significant set
// bit of b at a 0-based index strictly less than p, or -1 if no such
// bit exists.
func PreviousSet[W Word](b W, p int) int {
	w := Width[W]()
	if p <= 0 {
		return -1
	}
	if p > w {
		p = w
	}
	mask := (W(1) << uint(p)) - 1
	masked := b & mask
	if masked == 0 {
		return -1
	}
	return bitLen(masked)
}
