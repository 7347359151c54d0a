// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/containers/fault"
)

// Insert - add a value under key
//
// a new key creates a node and rebalances the tree; an existing key
// either fails with fault.ErrKeyAlreadyExists (UniqueKeys) or has the
// value appended to its chain without changing the tree shape
// (DuplicateKeys)
func (tree *Tree[K, V]) Insert(key K, value V) error {
	if none == tree.root {
		tree.root = tree.newNode(key, value, none)
		tree.count += 1
		return nil
	}

	p := tree.root
	for {
		c := tree.compare(key, tree.nodes[p].key)
		switch {
		case c < 0:
			if l := tree.nodes[p].left; none != l {
				p = l
				continue
			}
			h := tree.newNode(key, value, p)
			tree.nodes[p].left = h

		case c > 0:
			if r := tree.nodes[p].right; none != r {
				p = r
				continue
			}
			h := tree.newNode(key, value, p)
			tree.nodes[p].right = h

		default:
			if DuplicateKeys != tree.policy {
				return fault.ErrKeyAlreadyExists
			}
			tree.nodes[p].values = append(tree.nodes[p].values, value)
			tree.count += 1
			return nil
		}
		break
	}

	tree.count += 1
	tree.rebalanceUpward(p)
	return nil
}
