// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pqueue - a priority queue keyed by an ordered priority
//
// the queue is a thin layer over an avl.Tree so both ends are
// available; under avl.DuplicateKeys items with equal priority are
// served in arrival order
package pqueue

import (
	"cmp"

	"github.com/bitmark-inc/containers/avl"
)

// Queue - priority queue of values of type V ordered by K
type Queue[K any, V any] struct {
	tree *avl.Tree[K, V]
}

// New - create a queue with naturally ordered priorities
func New[K cmp.Ordered, V comparable](policy avl.Policy) *Queue[K, V] {
	return &Queue[K, V]{
		tree: avl.New[K, V](policy),
	}
}

// NewWithCompare - create a queue with a custom priority order
func NewWithCompare[K any, V any](policy avl.Policy, compare func(a, b K) int) *Queue[K, V] {
	return &Queue[K, V]{
		tree: avl.NewWithCompare[K, V](policy, compare, nil),
	}
}

// Insert - add a value at the given priority
//
// under avl.UniqueKeys a priority already queued is rejected
func (q *Queue[K, V]) Insert(priority K, value V) error {
	return q.tree.Insert(priority, value)
}

// NextMin - remove and return the value with the lowest priority
func (q *Queue[K, V]) NextMin() (V, error) {
	return q.tree.PopMin()
}

// NextMax - remove and return the value with the highest priority
func (q *Queue[K, V]) NextMax() (V, error) {
	return q.tree.PopMax()
}

// PeekMin - the value NextMin would return
func (q *Queue[K, V]) PeekMin() (V, error) {
	return q.tree.Min()
}

// PeekMax - the value NextMax would return
func (q *Queue[K, V]) PeekMax() (V, error) {
	return q.tree.Max()
}

// Contains - true if any value is queued at the priority
func (q *Queue[K, V]) Contains(priority K) bool {
	return q.tree.Contains(priority)
}

// Clear - discard everything
func (q *Queue[K, V]) Clear() {
	q.tree.Clear()
}

// Length - number of queued values
func (q *Queue[K, V]) Length() int {
	return q.tree.Count()
}

// IsEmpty - true if nothing is queued
func (q *Queue[K, V]) IsEmpty() bool {
	return q.tree.IsEmpty()
}
