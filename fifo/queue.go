// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fifo - first in first out queue on a growable ring buffer
package fifo

import (
	"github.com/eapache/queue"

	"github.com/bitmark-inc/containers/fault"
)

// Queue - FIFO of values of type T
type Queue[T comparable] struct {
	ring *queue.Queue
}

// New - create an empty queue
func New[T comparable]() *Queue[T] {
	return &Queue[T]{
		ring: queue.New(),
	}
}

// Add - append a value at the tail
func (q *Queue[T]) Add(value T) {
	q.ring.Add(value)
}

// Next - remove and return the value at the head
func (q *Queue[T]) Next() (T, error) {
	if 0 == q.ring.Length() {
		var zero T
		return zero, fault.ErrContainerIsEmpty
	}
	return q.ring.Remove().(T), nil
}

// Peek - the value at the head without removing it
func (q *Queue[T]) Peek() (T, error) {
	if 0 == q.ring.Length() {
		var zero T
		return zero, fault.ErrContainerIsEmpty
	}
	return q.ring.Peek().(T), nil
}

// Contains - linear scan for an equal value
func (q *Queue[T]) Contains(value T) bool {
	for i := 0; i < q.ring.Length(); i += 1 {
		if q.ring.Get(i).(T) == value {
			return true
		}
	}
	return false
}

// Clear - discard everything
func (q *Queue[T]) Clear() {
	q.ring = queue.New()
}

// Length - number of queued values
func (q *Queue[T]) Length() int {
	return q.ring.Length()
}

// IsEmpty - true if nothing is queued
func (q *Queue[T]) IsEmpty() bool {
	return 0 == q.ring.Length()
}
