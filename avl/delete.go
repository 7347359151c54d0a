// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/containers/fault"
)

// Remove - remove and return the oldest value stored under key, the
// key's node goes when its last value does
func (tree *Tree[K, V]) Remove(key K) (V, error) {
	p := tree.search(key)
	if none == p {
		var zero V
		return zero, fault.ErrKeyNotFound
	}
	return tree.take(p), nil
}

// RemoveAll - remove the key and return all of its values, oldest
// first
func (tree *Tree[K, V]) RemoveAll(key K) ([]V, error) {
	p := tree.search(key)
	if none == p {
		return nil, fault.ErrKeyNotFound
	}
	values := tree.nodes[p].values
	tree.count -= len(values)
	tree.unlink(p)
	return values, nil
}

// RemoveValue - remove the oldest value under key that is equal to
// value
func (tree *Tree[K, V]) RemoveValue(key K, value V) (V, error) {
	var zero V
	if nil == tree.equal {
		return zero, fault.ErrValueEqualityNotSet
	}
	p := tree.search(key)
	if none == p {
		return zero, fault.ErrKeyNotFound
	}

	values := tree.nodes[p].values
	for i, v := range values {
		if !tree.equal(v, value) {
			continue
		}
		tree.count -= 1
		if 1 == len(values) {
			tree.unlink(p)
			return v, nil
		}
		n := copy(values[i:], values[i+1:])
		values[i+n] = zero // release reference held by the spare slot
		tree.nodes[p].values = values[:i+n]
		return v, nil
	}
	return zero, fault.ErrValueNotFound
}

// PopMin - remove and return the oldest value of the lowest key
func (tree *Tree[K, V]) PopMin() (V, error) {
	if none == tree.root {
		var zero V
		return zero, fault.ErrContainerIsEmpty
	}
	return tree.take(tree.first(tree.root)), nil
}

// PopMax - remove and return the oldest value of the highest key
func (tree *Tree[K, V]) PopMax() (V, error) {
	if none == tree.root {
		var zero V
		return zero, fault.ErrContainerIsEmpty
	}
	return tree.take(tree.last(tree.root)), nil
}

// internal: detach the oldest value of a node, unlinking the node
// once the chain is empty
func (tree *Tree[K, V]) take(p handle) V {
	values := tree.nodes[p].values
	value := values[0]
	tree.count -= 1
	if 1 == len(values) {
		tree.unlink(p)
		return value
	}
	var zero V
	values[0] = zero
	tree.nodes[p].values = values[1:]
	return value
}

// internal: physically remove a node from the tree
//
// a node with two children takes over the key and values of its in
// order successor, which is then removed in its place; the successor
// has no left child so that removal is a leaf or single child case
func (tree *Tree[K, V]) unlink(p handle) {
	q := &tree.nodes[p]

	if none != q.left && none != q.right {
		s := tree.first(q.right)
		r := &tree.nodes[s]
		q.key = r.key
		q.values = r.values
		up := r.up
		tree.replaceChild(up, s, r.right)
		tree.freeNode(s)
		tree.rebalanceUpward(up)
		return
	}

	c := q.left
	if none == c {
		c = q.right
	}
	up := q.up
	tree.replaceChild(up, p, c)
	tree.freeNode(p)
	tree.rebalanceUpward(up)
}
