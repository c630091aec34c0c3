// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedmap

import (
	"cmp"
)

// Comparator - three way ordering function over keys: negative when a
// sorts before b, zero when they are equal, positive when a sorts
// after b.  It must describe a strict total order and is trusted
// blindly; a comparator that does not is a caller bug and degrades
// lookups without corrupting the structure.
type Comparator[K any] func(a, b K) int

// Entry - a key/value pair, used for bulk construction
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// Map - type to hold the root node of a tree and its ordering
type Map[K any, V any] struct {
	root  *Node[K, V]
	cmp   Comparator[K]
	count int
	free  *Node[K, V] // linked list of reclaimed nodes
}

// New - create a map ordered by cmp, preloaded with the initial
// entries applied in the order given
func New[K any, V any](cmp Comparator[K], entries ...Entry[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		root:  nil,
		cmp:   cmp,
		count: 0,
	}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// NewOrdered - create a map over keys with a standard Go ordering
func NewOrdered[K cmp.Ordered, V any](entries ...Entry[K, V]) *Map[K, V] {
	return New[K, V](cmp.Compare[K], entries...)
}

// IsEmpty - true if the map contains no entries
func (m *Map[K, V]) IsEmpty() bool {
	return nil == m.root
}

// Count - number of distinct keys currently stored
func (m *Map[K, V]) Count() int {
	return m.count
}

// Clear - drop every entry
//
// Constant time: the nodes are abandoned to the garbage collector
// rather than fed through the freelist one by one.
func (m *Map[K, V]) Clear() {
	m.root = nil
	m.count = 0
}
