// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// Print - display an ASCII graphic representation of the tree,
// returns the maximum depth of the tree
func (tree *Tree[K, V]) Print(w io.Writer, printData bool) int {
	if none == tree.root {
		fmt.Fprintln(w, "<empty>")
		return 0
	}
	t := treeprint.NewWithRoot(tree.label(tree.root, printData))
	depth := tree.printTree(t, tree.root, printData)
	fmt.Fprint(w, t.String())
	return depth
}

// internal print - adds the children of p to t, returns the depth
// of p's sub-tree
func (tree *Tree[K, V]) printTree(t treeprint.Tree, p handle, printData bool) int {
	n := &tree.nodes[p]
	ld := 0
	rd := 0
	if none != n.left {
		ld = tree.printChild(t, "L", n.left, printData)
	}
	if none != n.right {
		rd = tree.printChild(t, "R", n.right, printData)
	}
	return 1 + max(ld, rd)
}

func (tree *Tree[K, V]) printChild(t treeprint.Tree, side string, c handle, printData bool) int {
	n := &tree.nodes[c]
	if none == n.left && none == n.right {
		t.AddMetaNode(side, tree.label(c, printData))
		return 1
	}
	return tree.printTree(t.AddMetaBranch(side, tree.label(c, printData)), c, printData)
}

func (tree *Tree[K, V]) label(p handle, printData bool) string {
	n := &tree.nodes[p]
	up := interface{}(nil)
	if none != n.up {
		up = tree.nodes[n.up].key
	}
	if printData {
		return fmt.Sprintf("%v → %v ^%v h:%d", n.key, n.values, up, n.height)
	}
	return fmt.Sprintf("%v ^%v", n.key, up)
}
