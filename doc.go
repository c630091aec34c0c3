// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package orderedmap - a key/value map with deterministic iteration
// order, backed by an AVL balanced tree with parent pointers
//
// Ordering comes from a caller supplied three way comparator, so any
// key type can be used.  Iteration always visits entries in
// comparator order, whatever the insertion order was.
//
// Note: an individual map is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  Mutating the map while a traversal is being read
//       gives undefined iteration results.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs, reworked here to
// rebalance iteratively through the parent links instead of by
// recursion.
package orderedmap
