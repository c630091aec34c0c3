// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedmap

import (
	"iter"
)

// First - return the node with the lowest key, or nil when empty
func (m *Map[K, V]) First() *Node[K, V] {
	return m.root.first()
}

// Last - return the node with the highest key, or nil when empty
func (m *Map[K, V]) Last() *Node[K, V] {
	return m.root.last()
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key or
// nil if no more nodes
//
// The walk is structural, climbing the parent links, so it costs no
// comparator calls.
func (p *Node[K, V]) Next() *Node[K, V] {
	if nil != p.right {
		return p.right.first()
	}
	up := p.up
	for nil != up && p == up.right {
		p = up
		up = up.up
	}
	return up
}

// Prev - given a node, return the node with the next lowest key or
// nil if no more nodes
func (p *Node[K, V]) Prev() *Node[K, V] {
	if nil != p.left {
		return p.left.last()
	}
	up := p.up
	for nil != up && p == up.left {
		p = up
		up = up.up
	}
	return up
}

// All - the entries in comparator order
//
// The sequence is lazy and restartable: each range over it starts a
// fresh walk.  The map must not be mutated while a walk is read.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := m.First(); nil != p; p = p.Next() {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Keys - the keys in comparator order
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := m.First(); nil != p; p = p.Next() {
			if !yield(p.key) {
				return
			}
		}
	}
}

// Values - the values in key order
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for p := m.First(); nil != p; p = p.Next() {
			if !yield(p.value) {
				return
			}
		}
	}
}

// ForEach - call fn once per entry in comparator order; always runs
// to completion
func (m *Map[K, V]) ForEach(fn func(key K, value V)) {
	for p := m.First(); nil != p; p = p.Next() {
		fn(p.key, p.value)
	}
}
