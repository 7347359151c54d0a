// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/containers/fault"
)

// internal: descend to the node holding key, none if not present
func (tree *Tree[K, V]) search(key K) handle {
	p := tree.root
	for none != p {
		c := tree.compare(key, tree.nodes[p].key)
		switch {
		case c < 0:
			p = tree.nodes[p].left
		case c > 0:
			p = tree.nodes[p].right
		default:
			return p
		}
	}
	return none
}

// internal: lowest node in a sub-tree
func (tree *Tree[K, V]) first(p handle) handle {
	if none == p {
		return none
	}
	for none != tree.nodes[p].left {
		p = tree.nodes[p].left
	}
	return p
}

// internal: highest node in a sub-tree
func (tree *Tree[K, V]) last(p handle) handle {
	if none == p {
		return none
	}
	for none != tree.nodes[p].right {
		p = tree.nodes[p].right
	}
	return p
}

// Contains - true if key has at least one value
func (tree *Tree[K, V]) Contains(key K) bool {
	return none != tree.search(key)
}

// Get - the oldest value stored under key
func (tree *Tree[K, V]) Get(key K) (V, error) {
	p := tree.search(key)
	if none == p {
		var zero V
		return zero, fault.ErrKeyNotFound
	}
	return tree.nodes[p].values[0], nil
}

// GetAll - copy of every value stored under key, oldest first
func (tree *Tree[K, V]) GetAll(key K) ([]V, error) {
	p := tree.search(key)
	if none == p {
		return nil, fault.ErrKeyNotFound
	}
	return append([]V(nil), tree.nodes[p].values...), nil
}

// Set - overwrite the oldest value stored under an existing key
func (tree *Tree[K, V]) Set(key K, value V) error {
	p := tree.search(key)
	if none == p {
		return fault.ErrKeyNotFound
	}
	tree.nodes[p].values[0] = value
	return nil
}

// Min - oldest value of the lowest key
func (tree *Tree[K, V]) Min() (V, error) {
	if none == tree.root {
		var zero V
		return zero, fault.ErrContainerIsEmpty
	}
	return tree.nodes[tree.first(tree.root)].values[0], nil
}

// Max - oldest value of the highest key
func (tree *Tree[K, V]) Max() (V, error) {
	if none == tree.root {
		var zero V
		return zero, fault.ErrContainerIsEmpty
	}
	return tree.nodes[tree.last(tree.root)].values[0], nil
}
