// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/containers/fault"
)

// Check - verify the structure of the whole tree
//
// parent links, key order, cached heights, balance and the value and
// key counts are all recomputed and compared
func (tree *Tree[K, V]) Check() error {
	s := checkState{}
	if _, err := tree.check(tree.root, none, none, none, &s); nil != err {
		return err
	}
	if s.values != tree.count {
		return fmt.Errorf("%w: found %d values but count is %d", fault.ErrBadCount, s.values, tree.count)
	}
	if s.nodes != tree.keys {
		return fmt.Errorf("%w: found %d keys but key count is %d", fault.ErrBadCount, s.nodes, tree.keys)
	}
	return nil
}

type checkState struct {
	values int
	nodes  int
}

// internal: consistency checker, lo and hi are the nearest ancestors
// that bound p's key; returns the actual height of the sub-tree
func (tree *Tree[K, V]) check(p handle, up handle, lo handle, hi handle, s *checkState) (int, error) {
	if none == p {
		return 0, nil
	}
	n := &tree.nodes[p]
	if n.up != up {
		return 0, fmt.Errorf("%w: at key: %v", fault.ErrBadParentLink, n.key)
	}
	if none != lo && tree.compare(tree.nodes[lo].key, n.key) >= 0 {
		return 0, fmt.Errorf("%w: key: %v not above: %v", fault.ErrBadKeyOrder, n.key, tree.nodes[lo].key)
	}
	if none != hi && tree.compare(n.key, tree.nodes[hi].key) >= 0 {
		return 0, fmt.Errorf("%w: key: %v not below: %v", fault.ErrBadKeyOrder, n.key, tree.nodes[hi].key)
	}
	if 0 == len(n.values) {
		return 0, fmt.Errorf("%w: at key: %v", fault.ErrEmptyValueChain, n.key)
	}
	if UniqueKeys == tree.policy && len(n.values) > 1 {
		return 0, fmt.Errorf("%w: key: %v has %d values", fault.ErrBadCount, n.key, len(n.values))
	}
	s.values += len(n.values)
	s.nodes += 1

	lh, err := tree.check(n.left, p, lo, p, s)
	if nil != err {
		return 0, err
	}
	rh, err := tree.check(n.right, p, p, hi, s)
	if nil != err {
		return 0, err
	}

	h := 1 + max(lh, rh)
	if n.height != h {
		return 0, fmt.Errorf("%w: key: %v cached: %d  actual: %d", fault.ErrBadHeight, n.key, n.height, h)
	}
	if rh-lh > 1 || lh-rh > 1 {
		return 0, fmt.Errorf("%w: key: %v left: %d  right: %d", fault.ErrUnbalanced, n.key, lh, rh)
	}
	return h, nil
}
