// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedmap_test

import (
	"fmt"
	"strings"

	orderedmap "github.com/darblast/ordered-map"
)

func Example() {
	m := orderedmap.NewOrdered[int, string]()
	m.Set(3, "three").Set(1, "one").Set(2, "two")

	for k, v := range m.All() {
		fmt.Println(k, v)
	}
	// Output:
	// 1 one
	// 2 two
	// 3 three
}

func ExampleNew() {
	// any key type works, given a comparator
	caseless := func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}

	m := orderedmap.New[string, int](caseless)
	m.Set("Bravo", 2).Set("alpha", 1).Set("CHARLIE", 3)

	m.ForEach(func(key string, value int) {
		fmt.Println(key, value)
	})
	// Output:
	// alpha 1
	// Bravo 2
	// CHARLIE 3
}
