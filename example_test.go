// SPDX-License-Identifier: MIT

package layeredbitmap_test

import (
	"fmt"

	"github.com/nodascent/layeredbitmap"
)

func ExampleIndex_traversal() {
	idx, err := layeredbitmap.New(32, 5)
	if err != nil {
		panic(err)
	}

	for _, x := range []uint64{0, 1, 3, 4, 17, 1024} {
		if err := idx.Set(x); err != nil {
			panic(err)
		}
	}

	for v := range layeredbitmap.TraverseForward(idx, 0) {
		fmt.Println(v)
	}

	// Output:
	// 0
	// 1
	// 3
	// 4
	// 17
	// 1024
}

func ExampleIndex_findNext() {
	idx, err := layeredbitmap.New(32, 5)
	if err != nil {
		panic(err)
	}

	for _, x := range []uint64{10, 20, 30} {
		if err := idx.Set(x); err != nil {
			panic(err)
		}
	}

	next, err := idx.FindNext(15)
	if err != nil {
		panic(err)
	}
	fmt.Println(next)

	// Output:
	// 20
}
