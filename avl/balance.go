// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// cached height of a sub-tree, the absent node has height zero
func (tree *Tree[K, V]) height(h handle) int {
	return tree.nodes[h].height
}

// recompute a node's height from its children, children must already
// be correct
func (tree *Tree[K, V]) updateHeight(h handle) {
	if none == h {
		return
	}
	p := &tree.nodes[h]
	p.height = 1 + max(tree.nodes[p.left].height, tree.nodes[p.right].height)
}

// right height minus left height
func (tree *Tree[K, V]) balance(h handle) int {
	p := &tree.nodes[h]
	return tree.nodes[p.right].height - tree.nodes[p.left].height
}

func (tree *Tree[K, V]) setLeft(p handle, c handle) {
	tree.nodes[p].left = c
	if none != c {
		tree.nodes[c].up = p
	}
}

func (tree *Tree[K, V]) setRight(p handle, c handle) {
	tree.nodes[p].right = c
	if none != c {
		tree.nodes[c].up = p
	}
}

// put c where old was below up, up == none means old was the root
func (tree *Tree[K, V]) replaceChild(up handle, old handle, c handle) {
	switch {
	case none == up:
		tree.root = c
		if none != c {
			tree.nodes[c].up = none
		}
	case tree.nodes[up].left == old:
		tree.setLeft(up, c)
	default:
		tree.setRight(up, c)
	}
}

// promote the right child of p into p's position
//
//	   p              r
//	  / \            / \
//	 a   r    =>    p   c
//	    / \        / \
//	   b   c      a   b
func (tree *Tree[K, V]) rotateLeft(p handle) handle {
	r := tree.nodes[p].right
	tree.replaceChild(tree.nodes[p].up, p, r)
	tree.setRight(p, tree.nodes[r].left)
	tree.setLeft(r, p)
	tree.updateHeight(p)
	tree.updateHeight(r)
	return r
}

// promote the left child of p into p's position
func (tree *Tree[K, V]) rotateRight(p handle) handle {
	l := tree.nodes[p].left
	tree.replaceChild(tree.nodes[p].up, p, l)
	tree.setLeft(p, tree.nodes[l].right)
	tree.setRight(l, p)
	tree.updateHeight(p)
	tree.updateHeight(l)
	return l
}

// restore the AVL condition at p, returns the root of the sub-tree
// that now occupies p's position
func (tree *Tree[K, V]) rebalance(p handle) handle {
	tree.updateHeight(p)
	b := tree.balance(p)
	switch {
	case b > 1:
		r := tree.nodes[p].right
		if tree.balance(r) < 0 {
			tree.rotateRight(r) // RL case
		}
		return tree.rotateLeft(p)
	case b < -1:
		l := tree.nodes[p].left
		if tree.balance(l) > 0 {
			tree.rotateLeft(l) // LR case
		}
		return tree.rotateRight(p)
	}
	return p
}

// walk from p to the root fixing heights and balance on the way
//
// the walk always reaches the root, after an insert at most one
// rotation happens but a removal can rotate at several levels
func (tree *Tree[K, V]) rebalanceUpward(p handle) {
	for none != p {
		p = tree.rebalance(p)
		p = tree.nodes[p].up
	}
}
