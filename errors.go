// SPDX-License-Identifier: MIT

package layeredbitmap

import "errors"

// Sentinel errors returned at the API boundary. All out-of-domain
// inputs fail before any bit is flipped; a failed call never leaves the
// structure partially mutated.
var (
	// ErrBadConfig is returned by New when width is not 32 or 64, or
	// layers is not in [5, 8].
	ErrBadConfig = errors.New("layeredbitmap: bad width/layers configuration")

	// ErrOutOfRange is returned when a position falls outside
	// [0, W^L), or a bit/child index falls outside [0, W).
	ErrOutOfRange = errors.New("layeredbitmap: position out of range")

	// ErrBadValue is returned when a bit value other than 0 or 1 is
	// supplied.
	ErrBadValue = errors.New("layeredbitmap: bit value must be 0 or 1")
)
