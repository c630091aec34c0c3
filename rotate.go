// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedmap

// Rotations relink two or three nodes around p and return the node
// that takes p's place, already reattached to p's former parent (or
// installed as the new root).  Balance factors are recomputed from
// the pre-rotation balance of the pivot child:
//
//	single:  pivot ±1        → both end at 0
//	single:  pivot  0        → p keeps the lean, pivot mirrors it
//	double:  bottom pivot ±1 → one outer node mirrors it, other 0
//	double:  bottom pivot  0 → both outer nodes 0
//
// (the bottom pivot of a double rotation always ends at 0)
//
// The zero-balance single case only arises while absorbing a
// deletion; an insertion never produces it.

// internal: put n into p's slot - its parent's child link, or the root
func (m *Map[K, V]) replace(p *Node[K, V], n *Node[K, V]) {
	up := p.up
	n.up = up
	if nil == up {
		m.root = n
	} else if up.left == p {
		up.left = n
	} else {
		up.right = n
	}
}

// single RR rotation: p's right branch is too tall
func (m *Map[K, V]) rotateLeft(p *Node[K, V]) *Node[K, V] {
	p1 := p.right
	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}
	p1.left = p
	m.replace(p, p1)
	p.up = p1

	if 0 == p1.balance {
		p.balance = 1
		p1.balance = -1
	} else {
		p.balance = 0
		p1.balance = 0
	}
	return p1
}

// single LL rotation: p's left branch is too tall
func (m *Map[K, V]) rotateRight(p *Node[K, V]) *Node[K, V] {
	p1 := p.left
	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}
	p1.right = p
	m.replace(p, p1)
	p.up = p1

	if 0 == p1.balance {
		p.balance = -1
		p1.balance = 1
	} else {
		p.balance = 0
		p1.balance = 0
	}
	return p1
}

// double LR rotation: p leans left, p.left leans right
func (m *Map[K, V]) rotateLeftRight(p *Node[K, V]) *Node[K, V] {
	p1 := p.left
	p2 := p1.right
	p1.right = p2.left
	if nil != p1.right {
		p1.right.up = p1
	}
	p.left = p2.right
	if nil != p.left {
		p.left.up = p
	}
	p2.left = p1
	p2.right = p
	m.replace(p, p2)
	p.up = p2
	p1.up = p2

	if -1 == p2.balance {
		p.balance = 1
	} else {
		p.balance = 0
	}
	if 1 == p2.balance {
		p1.balance = -1
	} else {
		p1.balance = 0
	}
	p2.balance = 0
	return p2
}

// double RL rotation: p leans right, p.right leans left
func (m *Map[K, V]) rotateRightLeft(p *Node[K, V]) *Node[K, V] {
	p1 := p.right
	p2 := p1.left
	p1.left = p2.right
	if nil != p1.left {
		p1.left.up = p1
	}
	p.right = p2.left
	if nil != p.right {
		p.right.up = p
	}
	p2.right = p1
	p2.left = p
	m.replace(p, p2)
	p.up = p2
	p1.up = p2

	if 1 == p2.balance {
		p.balance = -1
	} else {
		p.balance = 0
	}
	if -1 == p2.balance {
		p1.balance = 1
	} else {
		p1.balance = 0
	}
	p2.balance = 0
	return p2
}
