// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/containers/counter"
)

// test incrementing/decrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	assert.True(t, c1.IsZero(), "counter is not zero at start: %d", c1.Uint64())

	c1.Increment()
	c1.Increment()
	c1.Increment()
	c1.Increment()
	c1.Increment()

	assert.Equal(t, uint64(5), c1.Uint64(), "after incrementing")

	c1.Decrement()
	assert.Equal(t, uint64(4), c1.Uint64(), "after decrementing")

	c1.Decrement()
	c1.Decrement()
	c1.Decrement()
	c1.Decrement()

	assert.True(t, c1.IsZero(), "counter did not return to zero: %d", c1.Uint64())

	c1.Decrement()

	// check against underflow, i.e. twos complement -1
	assert.Equal(t, ^uint64(0), c1.Uint64(), "counter did not underflow")
}

func TestAddAndReset(t *testing.T) {
	var c counter.Counter

	assert.Equal(t, uint64(10), c.Add(10), "add")
	assert.Equal(t, 5.0, c.Rate(2), "rate")
	assert.Equal(t, 0.0, c.Rate(0), "rate over empty period")

	assert.Equal(t, uint64(10), c.Reset(), "reset returns previous")
	assert.True(t, c.IsZero(), "zero after reset")
}

func TestConcurrentIncrement(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	const workers = 8
	const each = 1000
	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < each; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(workers*each), c.Uint64(), "total")
}
