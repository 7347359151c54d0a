// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/containers/fault"
)

var (
	ErrEmptyOne    = fault.EmptyError("empty one")
	ErrEmptyTwo    = fault.EmptyError("empty two")
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
)

// test that various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		empty    bool
		exists   bool
		invalid  bool
		notFound bool
	}{
		{ErrEmptyOne, true, false, false, false},
		{ErrEmptyTwo, true, false, false, false},
		{ErrExistsOne, false, true, false, false},
		{ErrExistsTwo, false, true, false, false},
		{ErrInvalidOne, false, false, true, false},
		{ErrInvalidTwo, false, false, true, false},
		{ErrNotFoundOne, false, false, false, true},
		{ErrNotFoundTwo, false, false, false, true},
		{fault.ErrContainerIsEmpty, true, false, false, false},
		{fault.ErrKeyAlreadyExists, false, true, false, false},
		{fault.ErrKeyNotFound, false, false, false, true},
		{fault.ErrValueNotFound, false, false, false, true},
		{fault.ErrUnbalanced, false, false, true, false},
		{fmt.Errorf("%w: wrapped", fault.ErrBadHeight), false, false, true, false},
		{fmt.Errorf("outer: %w", fault.ErrKeyNotFound), false, false, false, true},
		{fmt.Errorf("plain"), false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrEmpty(err) != e.empty {
			t.Errorf("%d: expected 'empty' == %v for err = %v", i, e.empty, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
	}
}

func TestInstancesCompareEqual(t *testing.T) {
	var err error = fault.ErrKeyNotFound
	assert.Equal(t, fault.ErrKeyNotFound, err, "same instance")
	assert.NotEqual(t, fault.ErrValueNotFound, err, "different instance")
	assert.Equal(t, "key not found", err.Error(), "message")
}

func TestPanicWithoutLogger(t *testing.T) {
	assert.PanicsWithValue(t, "abort now", func() {
		fault.Panic("abort now")
	})
	assert.PanicsWithValue(t, "setup failed with error: key not found", func() {
		fault.PanicIfError("setup", fault.ErrKeyNotFound)
	})
	assert.NotPanics(t, func() {
		fault.PanicIfError("setup", nil)
	})
}
