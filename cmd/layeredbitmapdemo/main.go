// SPDX-License-Identifier: MIT

// Command layeredbitmapdemo builds a layered bitmap index over a
// synthetic stream of positions, times the insert and traversal
// passes, and prints one successor/predecessor probe around the middle
// of the universe. It
// exists as a runnable demonstration, not a benchmark harness.
package main

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/nodascent/layeredbitmap"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	const (
		width   = 64
		layers  = 6
		count   = 200_000
		showTop = 10
	)

	idx, err := layeredbitmap.New(width, layers)
	if err != nil {
		log.Fatalf("New: %v", err)
	}

	prng := rand.New(rand.NewPCG(42, 42))
	universe := idx.Universe()

	ts := time.Now()
	for i := 0; i < count; i++ {
		x := prng.Uint64N(universe)
		if err := idx.Set(x); err != nil {
			log.Fatalf("Set(%d): %v", x, err)
		}
	}
	log.Printf("inserted %d random positions into [0, %d): %v", count, universe, time.Since(ts))

	ts = time.Now()
	n := 0
	for v := range layeredbitmap.TraverseForward(idx, 0) {
		n++
		if n > showTop {
			break
		}
		log.Printf("traverse_forward: %d", v)
	}
	log.Printf("scanned first %d members: %v", showTop, time.Since(ts))

	probe := universe / 2
	next, err := idx.FindNext(probe)
	if err != nil {
		log.Fatalf("FindNext(%d): %v", probe, err)
	}
	prev, err := idx.FindPrevious(probe)
	if err != nil {
		log.Fatalf("FindPrevious(%d): %v", probe, err)
	}
	log.Printf("around %d: find_previous=%d find_next=%d", probe, prev, next)
}
