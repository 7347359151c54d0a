// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	EmptyError    GenericError
	ExistsError   GenericError
	InvalidError  GenericError
	NotFoundError GenericError
)

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBadCount             = InvalidError("value count is inconsistent")
	ErrBadHeight            = InvalidError("cached height is inconsistent")
	ErrBadKeyOrder          = InvalidError("keys are out of order")
	ErrBadParentLink        = InvalidError("parent link is inconsistent")
	ErrContainerIsEmpty     = EmptyError("container is empty")
	ErrEmptyValueChain      = InvalidError("node has no values")
	ErrInvalidElementCount  = InvalidError("element count is invalid")
	ErrInvalidKeyRange      = InvalidError("key range is invalid")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidOperationMix  = InvalidError("operation mix is invalid")
	ErrInvalidPolicy        = InvalidError("key policy is invalid")
	ErrInvalidRateLimit     = InvalidError("rate limit is invalid")
	ErrInvalidWorkerCount   = InvalidError("worker count is invalid")
	ErrKeyAlreadyExists     = ExistsError("key already exists")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrNotATable            = InvalidError("configuration did not return a table")
	ErrUnbalanced           = InvalidError("sub-tree heights differ by more than one")
	ErrValueEqualityNotSet  = InvalidError("value equality function is not set")
	ErrValueNotFound        = NotFoundError("value not found")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e EmptyError) Error() string    { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }

// determine the class of an error, wrapped errors are unwrapped
func IsErrEmpty(e error) bool    { var t EmptyError; return errors.As(e, &t) }
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
