// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// index of a node in the tree's arena
type handle int

// the absent node, slot zero of every arena is never written
const none handle = 0

// a node in the tree
type node[K any, V any] struct {
	key    K      // key part for ordering
	values []V    // value chain, oldest first, never empty while linked
	height int    // height of the sub-tree rooted here, leaf = 1
	up     handle // parent node, also the free list link
	left   handle // left sub-tree
	right  handle // right sub-tree
}

// allocate a new leaf node, reuses reclaimed slots if any are
// available
//
// the arena may move, so pointers to nodes must not be held across a
// call
func (tree *Tree[K, V]) newNode(key K, value V, up handle) handle {
	n := node[K, V]{
		key:    key,
		values: []V{value},
		height: 1,
		up:     up,
	}
	tree.keys += 1
	if none == tree.free {
		tree.nodes = append(tree.nodes, n)
		return handle(len(tree.nodes) - 1)
	}
	h := tree.free
	tree.free = tree.nodes[h].up
	tree.nodes[h] = n
	return h
}

// reclaim a node and keep its slot in the free list
func (tree *Tree[K, V]) freeNode(h handle) {
	tree.nodes[h] = node[K, V]{
		up: tree.free, // use as free list pointer
	}
	tree.free = h
	tree.keys -= 1
}
