// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedmap

// Set - store value under key, creating the entry or overwriting an
// existing one in place; returns the map so calls can be chained
func (m *Map[K, V]) Set(key K, value V) *Map[K, V] {
	if m.insert(key, value) {
		m.count += 1
	}
	return m
}

// internal routine for insert: descend to the attachment point and
// report whether a new node was created
func (m *Map[K, V]) insert(key K, value V) bool {
	if nil == m.root {
		m.root = m.newNode(key, value, nil)
		return true
	}
	p := m.root
	for {
		switch d := m.cmp(key, p.key); {
		case d < 0:
			if nil == p.left {
				p.left = m.newNode(key, value, p)
				m.rebalanceGrown(p.left)
				return true
			}
			p = p.left
		case d > 0:
			if nil == p.right {
				p.right = m.newNode(key, value, p)
				m.rebalanceGrown(p.right)
				return true
			}
			p = p.right
		default:
			p.value = value
			return false
		}
	}
}

// internal: absorb the extra height added below by the fresh leaf n
//
// Walks the parent chain from the attachment point.  The walk stops
// as soon as an ancestor absorbs the growth (its balance moves toward
// 0) and immediately after a rotation: a single insertion never needs
// more than one rotation, single or double.
func (m *Map[K, V]) rebalanceGrown(n *Node[K, V]) {
	for p := n.up; nil != p; n, p = p, p.up {
		if n == p.left {
			// left branch has grown
			if 1 == p.balance {
				p.balance = 0
				return
			}
			if 0 == p.balance {
				p.balance = -1
				continue
			}
			// balance == -1, rebalance
			if 1 == n.balance {
				m.rotateLeftRight(p)
			} else {
				m.rotateRight(p)
			}
			return
		}

		// right branch has grown
		if -1 == p.balance {
			p.balance = 0
			return
		}
		if 0 == p.balance {
			p.balance = 1
			continue
		}
		// balance == +1, rebalance
		if -1 == n.balance {
			m.rotateRightLeft(p)
		} else {
			m.rotateLeft(p)
		}
		return
	}
}
