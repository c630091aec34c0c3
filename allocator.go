// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedmap

// Node - a single key/value pair inside a Map
//
// Nodes are stable: a node keeps its address from the Set that
// creates it until the Delete that removes it, so a *Node may be held
// across rebalancing.
type Node[K any, V any] struct {
	left    *Node[K, V] // left sub-tree
	right   *Node[K, V] // right sub-tree
	up      *Node[K, V] // points to parent node
	key     K           // key part for ordering
	value   V           // value part for data storage
	balance int8        // -1, 0, +1
}

// Key - read the key from a node
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node
func (p *Node[K, V]) Value() V {
	return p.value
}

// allocate a new node, reusing reclaimed nodes if any are available
//
// The freelist is per map and needs no locking: a map has a single
// writer.
func (m *Map[K, V]) newNode(key K, value V, up *Node[K, V]) *Node[K, V] {
	p := m.free
	if nil == p {
		return &Node[K, V]{
			key:   key,
			value: value,
			up:    up,
		}
	}
	m.free = p.up
	p.key = key
	p.value = value
	p.balance = 0
	p.left = nil
	p.right = nil
	p.up = up
	return p
}

// reclaim a node and keep it on the freelist
func (m *Map[K, V]) freeNode(p *Node[K, V]) {
	var zeroK K
	var zeroV V
	p.left = nil
	p.right = nil
	p.key = zeroK
	p.value = zeroV
	p.balance = 0
	p.up = m.free // use as free list pointer
	m.free = p
}
