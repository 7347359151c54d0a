// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: node with the next highest key or none
func (tree *Tree[K, V]) successor(p handle) handle {
	if r := tree.nodes[p].right; none != r {
		return tree.first(r)
	}
	for up := tree.nodes[p].up; none != up; p, up = up, tree.nodes[up].up {
		if tree.nodes[up].left == p {
			return up
		}
	}
	return none
}

// internal: node with the next lowest key or none
func (tree *Tree[K, V]) predecessor(p handle) handle {
	if l := tree.nodes[p].left; none != l {
		return tree.last(l)
	}
	for up := tree.nodes[p].up; none != up; p, up = up, tree.nodes[up].up {
		if tree.nodes[up].right == p {
			return up
		}
	}
	return none
}

// Cursor - bidirectional in-order position in a tree
//
// a cursor steps through every value, so a key with three values is
// visited three times; it becomes invalid when stepped past either
// end of the tree
type Cursor[K any, V any] struct {
	tree  *Tree[K, V]
	node  handle
	index int // position in the node's value chain
}

// First - cursor at the oldest value of the lowest key
func (tree *Tree[K, V]) First() *Cursor[K, V] {
	return &Cursor[K, V]{
		tree:  tree,
		node:  tree.first(tree.root),
		index: 0,
	}
}

// Last - cursor at the newest value of the highest key, used as the
// start of a reverse traversal
func (tree *Tree[K, V]) Last() *Cursor[K, V] {
	c := &Cursor[K, V]{
		tree: tree,
		node: tree.last(tree.root),
	}
	if none != c.node {
		c.index = len(tree.nodes[c.node].values) - 1
	}
	return c
}

// Seek - cursor at the oldest value of key, invalid if the key is
// not in the tree
func (tree *Tree[K, V]) Seek(key K) *Cursor[K, V] {
	return &Cursor[K, V]{
		tree:  tree,
		node:  tree.search(key),
		index: 0,
	}
}

// Valid - false once the cursor has moved past either end
func (c *Cursor[K, V]) Valid() bool {
	return none != c.node
}

// Key - key at the cursor
func (c *Cursor[K, V]) Key() K {
	return c.tree.nodes[c.node].key
}

// Value - value at the cursor
func (c *Cursor[K, V]) Value() V {
	return c.tree.nodes[c.node].values[c.index]
}

// Next - advance through the remaining values of the current key,
// then on to the oldest value of the next key
func (c *Cursor[K, V]) Next() {
	if none == c.node {
		return
	}
	if c.index+1 < len(c.tree.nodes[c.node].values) {
		c.index += 1
		return
	}
	c.node = c.tree.successor(c.node)
	c.index = 0
}

// Prev - retreat through the earlier values of the current key, then
// on to the newest value of the previous key
func (c *Cursor[K, V]) Prev() {
	if none == c.node {
		return
	}
	if c.index > 0 {
		c.index -= 1
		return
	}
	c.node = c.tree.predecessor(c.node)
	if none != c.node {
		c.index = len(c.tree.nodes[c.node].values) - 1
	}
}
