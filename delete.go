// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedmap

// Delete - remove key from the map, reporting whether an entry was
// removed; deleting an absent key is a no-op
func (m *Map[K, V]) Delete(key K) bool {
	p := m.search(key)
	if nil == p {
		return false
	}
	m.remove(p)
	m.count -= 1
	return true
}

// internal: detach node p from the tree
//
// A node with two children is not spliced out directly: the in-order
// successor's key and value are copied over p, and the successor -
// which has at most a right child - is the node physically removed.
func (m *Map[K, V]) remove(p *Node[K, V]) {
	if nil != p.left && nil != p.right {
		s := p.right.first()
		p.key = s.key
		p.value = s.value
		p = s
	}

	// splice: p now has at most one child
	child := p.left
	if nil == child {
		child = p.right
	}
	up := p.up
	fromLeft := nil != up && up.left == p
	if nil != child {
		child.up = up
	}
	if nil == up {
		m.root = child
	} else if fromLeft {
		up.left = child
	} else {
		up.right = child
	}
	m.freeNode(p) // return deleted node to the freelist
	m.rebalanceShrunk(up, fromLeft)
}

// internal: absorb the height lost below p on the side indicated by
// fromLeft
//
// Unlike insertion this walk can rotate at several ancestors, since a
// rotation here may shorten the rotated subtree again.  It stops once
// an ancestor's height is unchanged.
func (m *Map[K, V]) rebalanceShrunk(p *Node[K, V], fromLeft bool) {
	for nil != p {
		if fromLeft {
			// left branch has shrunk
			if -1 == p.balance {
				p.balance = 0
			} else if 0 == p.balance {
				p.balance = 1
				return
			} else {
				// balance == +1, rebalance
				if -1 == p.right.balance {
					p = m.rotateRightLeft(p)
				} else {
					p = m.rotateLeft(p)
					if 0 != p.balance {
						return
					}
				}
			}
		} else {
			// right branch has shrunk
			if 1 == p.balance {
				p.balance = 0
			} else if 0 == p.balance {
				p.balance = -1
				return
			} else {
				// balance == -1, rebalance
				if 1 == p.left.balance {
					p = m.rotateLeftRight(p)
				} else {
					p = m.rotateRight(p)
					if 0 != p.balance {
						return
					}
				}
			}
		}

		up := p.up
		fromLeft = nil != up && up.left == p
		p = up
	}
}
