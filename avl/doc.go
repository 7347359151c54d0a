// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes without recursion or
// an explicit stack
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Nodes are kept in a per-tree arena and refer to each other by
// handle, the arena is the only owner of node storage.  Each node
// holds one key and a chain of values.  A tree created with the
// UniqueKeys policy rejects a second insert of the same key, a tree
// created with DuplicateKeys appends the value to the key's chain.
// Value chains are FIFO: the oldest value of a key is the one
// returned by Get, Min, Max and consumed by Remove, PopMin, PopMax.
//
// Any insert or remove invalidates all outstanding cursors; using a
// cursor after mutating its tree gives undefined results.
package avl
