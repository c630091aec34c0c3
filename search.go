// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedmap

// Get - fetch the value stored under key
func (m *Map[K, V]) Get(key K) (V, bool) {
	if p := m.search(key); nil != p {
		return p.value, true
	}
	var zero V
	return zero, false
}

// Has - true if key is present
func (m *Map[K, V]) Has(key K) bool {
	return nil != m.search(key)
}

// Search - find the node holding key, or nil
func (m *Map[K, V]) Search(key K) *Node[K, V] {
	return m.search(key)
}

// internal: comparator driven descent
func (m *Map[K, V]) search(key K) *Node[K, V] {
	p := m.root
	for nil != p {
		switch d := m.cmp(key, p.key); {
		case d < 0:
			p = p.left
		case d > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}
