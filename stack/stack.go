// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stack - last in first out stack
package stack

import (
	"github.com/bitmark-inc/containers/fault"
)

// Stack - LIFO of values of type T
type Stack[T any] struct {
	items []T
}

// New - create an empty stack
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Put - push a value
func (s *Stack[T]) Put(value T) {
	s.items = append(s.items, value)
}

// Peek - the top value without removing it
func (s *Stack[T]) Peek() (T, error) {
	if 0 == len(s.items) {
		var zero T
		return zero, fault.ErrContainerIsEmpty
	}
	return s.items[len(s.items)-1], nil
}

// Pop - remove and return the top value
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if 0 == n {
		return zero, fault.ErrContainerIsEmpty
	}
	value := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return value, nil
}

// Size - number of values on the stack
func (s *Stack[T]) Size() int {
	return len(s.items)
}

// IsEmpty - true if the stack holds nothing
func (s *Stack[T]) IsEmpty() bool {
	return 0 == len(s.items)
}

// Clear - discard everything
func (s *Stack[T]) Clear() {
	s.items = nil
}
