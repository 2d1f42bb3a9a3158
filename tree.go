// SPDX-License-Identifier: MIT

package layeredbitmap

import (
	"fmt"

	"github.com/nodascent/layeredbitmap/internal/bitops"
)

// Index is the public contract of a layered bitmap index: a fixed
// (width, layers) universe [0, width^layers) supporting insertion,
// membership, and ordered successor/predecessor search. New resolves a
// runtime (width, layers) pair to one of two compile-time
// specializations (tree[uint32] or tree[uint64]) and returns it behind
// this interface, so callers never need to know or care which word
// width backs a given index.
type Index interface {
	// Set inserts x into the index. x must be in [0, Universe()).
	Set(x uint64) error

	// Get reports whether x is a member: 1 if present, 0 otherwise.
	Get(x uint64) (int, error)

	// FindNext returns the smallest member strictly greater than x, or
	// -1 if none exists.
	FindNext(x uint64) (int64, error)

	// FindPrevious returns the largest member strictly less than x, or
	// -1 if none exists.
	FindPrevious(x uint64) (int64, error)

	// Width returns the configured word width (32 or 64).
	Width() int

	// Layers returns the configured tree depth (5-8).
	Layers() int

	// Universe returns width^layers, the exclusive upper bound on
	// representable positions.
	Universe() uint64
}

// tree owns the root node and the (width, layers) configuration shared
// by every node in it. W is the compile-time specialization of the
// runtime width New() was given.
type tree[W bitops.Word] struct {
	cfg  *config
	root *node[W]
}

// New constructs a layered bitmap index over [0, width^layers).
// width must be 32 or 64; layers must be in [5, 8].
func New(width, layers int) (Index, error) {
	if layers < 5 || layers > 8 {
		return nil, fmt.Errorf("%w: layers %d not in [5, 8]", ErrBadConfig, layers)
	}
	switch width {
	case 32:
		return newTree[uint32](width, layers), nil
	case 64:
		return newTree[uint64](width, layers), nil
	default:
		return nil, fmt.Errorf("%w: width %d not in {32, 64}", ErrBadConfig, width)
	}
}

func newTree[W bitops.Word](width, layers int) *tree[W] {
	cfg := newConfig(width, layers)
	return &tree[W]{cfg: cfg, root: newNode[W](cfg)}
}

func (t *tree[W]) Width() int       { return t.cfg.width }
func (t *tree[W]) Layers() int      { return t.cfg.layers }
func (t *tree[W]) Universe() uint64 { return t.cfg.pow[t.cfg.layers] }

// digit returns d_k, the k-th base-width digit of x, most-significant
// first: d_k = floor(x / width^(layers-1-k)) mod width.
func (t *tree[W]) digit(x uint64, k int) int {
	return int((x / t.cfg.pow[t.cfg.layers-1-k]) % uint64(t.cfg.width))
}

func (t *tree[W]) checkRange(x uint64) error {
	if x >= t.Universe() {
		return fmt.Errorf("%w: %d >= universe %d", ErrOutOfRange, x, t.Universe())
	}
	return nil
}

// Set implements Index.
func (t *tree[W]) Set(x uint64) error {
	if err := t.checkRange(x); err != nil {
		return err
	}

	n := t.root
	for k := 0; k < t.cfg.layers; k++ {
		d := t.digit(x, k)
		if k == t.cfg.layers-1 {
			// unreachable error: d is always in [0, width) by construction
			return n.setBit(d, 1)
		}
		// Interior bits mark child presence, so attachChild sets bit d
		// together with the child it installs.
		child := n.child(d)
		if child == nil {
			child = newNode[W](t.cfg)
			if err := n.attachChild(d, child); err != nil {
				return err
			}
		}
		n = child
	}
	return nil
}

// Get implements Index.
func (t *tree[W]) Get(x uint64) (int, error) {
	if err := t.checkRange(x); err != nil {
		return 0, err
	}

	n := t.root
	for k := 0; k < t.cfg.layers; k++ {
		d := t.digit(x, k)
		if k == t.cfg.layers-1 {
			return n.getBit(d)
		}
		child := n.child(d)
		if child == nil {
			return 0, nil
		}
		n = child
	}
	panic("layeredbitmap: unreachable: layers >= 5 guaranteed by New")
}

// descend walks the digits of x as far as existing children allow. It
// returns the deepest node reached and the digit that would select the
// next step from it (or, if full descent to a leaf succeeds, the leaf
// and the member bit's own digit). This is the "frontier" used to seed
// both FindNext and FindPrevious.
func (t *tree[W]) descend(x uint64) (n *node[W], curpos int) {
	n = t.root
	for k := 0; k < t.cfg.layers; k++ {
		d := t.digit(x, k)
		if k == t.cfg.layers-1 {
			return n, d
		}
		child := n.child(d)
		if child == nil {
			return n, d
		}
		n = child
	}
	panic("layeredbitmap: unreachable: layers >= 5 guaranteed by New")
}

// FindNext implements Index: the smallest member strictly greater
// than x.
func (t *tree[W]) FindNext(x uint64) (int64, error) {
	if err := t.checkRange(x); err != nil {
		return 0, err
	}

	node, fromIndex := t.descend(x)
	for i := 0; i <= t.cfg.layers; i++ {
		if node == nil {
			return -1, nil
		}
		if r := node.findNext(fromIndex + 1); r > -1 {
			return t.leftmostMember(node, r), nil
		}
		fromIndex = node.parentIndex
		node = node.parent
	}
	panic("layeredbitmap: findNext: ascent exceeded tree depth")
}

// FindPrevious implements Index: the largest member strictly less
// than x.
func (t *tree[W]) FindPrevious(x uint64) (int64, error) {
	if err := t.checkRange(x); err != nil {
		return 0, err
	}

	node, fromIndex := t.descend(x)
	for i := 0; i <= t.cfg.layers; i++ {
		if node == nil {
			return -1, nil
		}
		if r := node.findPrevious(fromIndex); r > -1 {
			return t.rightmostMember(node, r), nil
		}
		fromIndex = node.parentIndex
		node = node.parent
	}
	panic("layeredbitmap: findPrevious: ascent exceeded tree depth")
}

// leftmostMember descends from start at child r-1 down to the leftmost
// member of that subtree: it repeatedly re-enters at the lowest set bit
// (findNext(0)) of each descendant until a slot's child is absent, which
// can only happen at a leaf (interior bits imply a present child, by
// construction - see node.attachChild and Set).
func (t *tree[W]) leftmostMember(start *node[W], r int) int64 {
	descender := start
	for {
		prev := descender
		next := descender.child(r - 1)
		if next == nil {
			return int64(prev.lowerBound) + int64(r) - 1
		}
		descender = next
		r = descender.findNext(0)
		if r == -1 {
			panic("layeredbitmap: invariant violated: set bit implies a non-empty subtree")
		}
	}
}

// rightmostMember is leftmostMember's mirror: it descends to the
// rightmost member of the subtree rooted at child r-1 of start, by
// re-entering each descendant at its highest set bit (findPrevious(width)).
func (t *tree[W]) rightmostMember(start *node[W], r int) int64 {
	descender := start
	for {
		prev := descender
		next := descender.child(r - 1)
		if next == nil {
			return int64(prev.lowerBound) + int64(r) - 1
		}
		descender = next
		r = descender.findPrevious(t.cfg.width)
		if r == -1 {
			panic("layeredbitmap: invariant violated: set bit implies a non-empty subtree")
		}
	}
}
