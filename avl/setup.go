// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/containers/fault"
)

// Policy - how a tree treats an insert of a key that is already present
type Policy int

// key policies
const (
	UniqueKeys    Policy = iota // insert of an existing key fails
	DuplicateKeys Policy = iota // insert of an existing key extends its value chain
)

// String - conversion from fmt package
func (p Policy) String() string {
	switch p {
	case UniqueKeys:
		return "unique"
	case DuplicateKeys:
		return "duplicate"
	default:
		return "unknown"
	}
}

// Tree - type to hold the root node of a tree
type Tree[K any, V any] struct {
	nodes   []node[K, V] // arena, nodes[none] is the absent node
	free    handle       // head of the reclaimed slot list
	root    handle
	count   int // number of values
	keys    int // number of nodes
	policy  Policy
	compare func(a, b K) int
	equal   func(a, b V) bool
}

// New - create an initially empty tree for naturally ordered keys
func New[K cmp.Ordered, V comparable](policy Policy) *Tree[K, V] {
	return NewWithCompare[K, V](policy, cmp.Compare[K], func(a, b V) bool {
		return a == b
	})
}

// NewWithCompare - create an initially empty tree ordered by compare
//
// compare must be a total order returning <0, 0, >0.  equal is only
// needed by RemoveValue and may be nil.
func NewWithCompare[K any, V any](policy Policy, compare func(a, b K) int, equal func(a, b V) bool) *Tree[K, V] {
	if nil == compare {
		fault.Panic("avl: tree created without a compare function")
	}
	return &Tree[K, V]{
		nodes:   make([]node[K, V], 1),
		free:    none,
		root:    none,
		count:   0,
		policy:  policy,
		compare: compare,
		equal:   equal,
	}
}

// Policy - the duplicate key policy fixed at creation
func (tree *Tree[K, V]) Policy() Policy {
	return tree.policy
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return none == tree.root
}

// Count - number of values currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// KeyCount - number of distinct keys currently in the tree
func (tree *Tree[K, V]) KeyCount() int {
	return tree.keys
}

// Height - height of the whole tree, zero when empty
func (tree *Tree[K, V]) Height() int {
	return tree.height(tree.root)
}

// Clear - discard every node
func (tree *Tree[K, V]) Clear() {
	tree.nodes = make([]node[K, V], 1)
	tree.free = none
	tree.root = none
	tree.count = 0
	tree.keys = 0
}

// Clone - deep copy of the tree, no value chain is shared with the
// original
func (tree *Tree[K, V]) Clone() *Tree[K, V] {
	nodes := make([]node[K, V], len(tree.nodes))
	copy(nodes, tree.nodes)
	for i := range nodes {
		if nil != nodes[i].values {
			nodes[i].values = append([]V(nil), nodes[i].values...)
		}
	}
	return &Tree[K, V]{
		nodes:   nodes,
		free:    tree.free,
		root:    tree.root,
		count:   tree.count,
		keys:    tree.keys,
		policy:  tree.policy,
		compare: tree.compare,
		equal:   tree.equal,
	}
}
