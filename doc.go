// SPDX-License-Identifier: MIT

// Package layeredbitmap implements a hierarchical bitmap index over a
// bounded non-negative integer universe [0, W^L), where W is a machine
// word width (32 or 64 bits) and L is the tree depth (5-8 layers).
//
// The index supports point insertion (Set), point membership (Get),
// and ordered successor/predecessor search (FindNext, FindPrevious) in
// time proportional to L rather than to the universe size or the
// population. Only the deepest layer (the leaves) ever materializes a
// bit per member; every other layer just marks "something lives under
// this slot", and interior nodes are created lazily, only along paths
// that have actually been inserted into.
//
// Deletion, duplicate counting, persistence, concurrent mutation, and
// automatic resizing beyond the (W, L) chosen at construction are all
// out of scope; see New.
package layeredbitmap
