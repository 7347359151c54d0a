// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math/rand"
	"testing"

	"github.com/bitmark-inc/containers/avl"
)

func BenchmarkInsert(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	tree := avl.New[int, int](avl.DuplicateKeys)
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		_ = tree.Insert(r.Intn(1<<20), i)
	}
}

func BenchmarkGet(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	tree := avl.New[int, int](avl.UniqueKeys)
	for i := 0; i < 100000; i += 1 {
		_ = tree.Insert(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		_, _ = tree.Get(r.Intn(100000))
	}
}

func BenchmarkInsertPopMin(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	tree := avl.New[int, int](avl.DuplicateKeys)
	for i := 0; i < 10000; i += 1 {
		_ = tree.Insert(r.Intn(1<<20), i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		_ = tree.Insert(r.Intn(1<<20), i)
		_, _ = tree.PopMin()
	}
}
