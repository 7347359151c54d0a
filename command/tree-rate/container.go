// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/twmb/go-rbtree"

	"github.com/bitmark-inc/containers/avl"
	"github.com/bitmark-inc/containers/fault"
)

// the operations a worker measures, each returns false when the
// operation had nothing to act on
type container interface {
	insert(key int, value uint64) bool
	get(key int) bool
	remove(key int) bool
	popMin() bool
	popMax() bool
	check() error
	count() int
}

// AVL tree under test
type avlContainer struct {
	tree *avl.Tree[int, uint64]
}

func newAVLContainer(policy avl.Policy) *avlContainer {
	return &avlContainer{
		tree: avl.New[int, uint64](policy),
	}
}

func (c *avlContainer) insert(key int, value uint64) bool {
	return nil == c.tree.Insert(key, value)
}

func (c *avlContainer) get(key int) bool {
	_, err := c.tree.Get(key)
	return nil == err
}

func (c *avlContainer) remove(key int) bool {
	_, err := c.tree.Remove(key)
	return nil == err
}

func (c *avlContainer) popMin() bool {
	_, err := c.tree.PopMin()
	return nil == err
}

func (c *avlContainer) popMax() bool {
	_, err := c.tree.PopMax()
	return nil == err
}

func (c *avlContainer) check() error {
	return c.tree.Check()
}

func (c *avlContainer) count() int {
	return c.tree.Count()
}

// red-black baseline holding the same value chains
type rbEntry struct {
	key    int
	values []uint64
}

func (e *rbEntry) Less(other rbtree.Item) bool {
	return e.key < other.(*rbEntry).key
}

type rbContainer struct {
	tree       rbtree.Tree
	duplicates bool
	values     int
}

func newRBContainer(policy avl.Policy) *rbContainer {
	return &rbContainer{
		duplicates: avl.DuplicateKeys == policy,
	}
}

func (c *rbContainer) insert(key int, value uint64) bool {
	if n := c.tree.Find(&rbEntry{key: key}); nil != n {
		if !c.duplicates {
			return false
		}
		e := n.Item.(*rbEntry)
		e.values = append(e.values, value)
		c.values += 1
		return true
	}
	c.tree.Insert(&rbEntry{key: key, values: []uint64{value}})
	c.values += 1
	return true
}

func (c *rbContainer) get(key int) bool {
	return nil != c.tree.Find(&rbEntry{key: key})
}

func (c *rbContainer) remove(key int) bool {
	return c.take(c.tree.Find(&rbEntry{key: key}))
}

func (c *rbContainer) popMin() bool {
	return c.take(c.tree.Min())
}

func (c *rbContainer) popMax() bool {
	return c.take(c.tree.Max())
}

// consume the oldest value of the node
func (c *rbContainer) take(n *rbtree.Node) bool {
	if nil == n {
		return false
	}
	e := n.Item.(*rbEntry)
	e.values = e.values[1:]
	if 0 == len(e.values) {
		c.tree.Delete(n)
	}
	c.values -= 1
	return true
}

// only the value total can be verified from outside the package
func (c *rbContainer) check() error {
	n := 0
	for it := rbtree.IterAt(c.tree.Min()); it.Ok(); it.Right() {
		n += len(it.Item().(*rbEntry).values)
	}
	if n != c.values {
		return fmt.Errorf("%w: found %d values but count is %d", fault.ErrBadCount, n, c.values)
	}
	return nil
}

func (c *rbContainer) count() int {
	return c.values
}
