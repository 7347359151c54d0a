// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/containers/counter"
	"github.com/bitmark-inc/logger"
)

type operation int

const (
	opInsert operation = iota
	opGet
	opRemove
	opPopMin
	opPopMax
	operationCount
)

var operationNames = [operationCount]string{
	opInsert: "insert",
	opGet:    "get",
	opRemove: "remove",
	opPopMin: "pop-min",
	opPopMax: "pop-max",
}

func (op operation) String() string {
	if op < 0 || op >= operationCount {
		return "unknown"
	}
	return operationNames[op]
}

// shared by every worker that exercises the same kind of container
type statistics struct {
	name     string
	total    counter.Counter
	interval counter.Counter
	misses   counter.Counter
	ops      [operationCount]counter.Counter
}

// operations between checks of the shutdown channel
const batchSize = 256

// one worker owns one container, nothing is shared except the
// counters
type worker struct {
	log      *logger.L
	c        container
	rng      *rand.Rand
	cumulate []int // running total of the mix weights
	keyRange int
	preload  int
	limiter  *rate.Limiter // nil for unlimited
	stats    *statistics
	serial   uint64
	err      error
}

func newWorker(log *logger.L, c container, seed int64, cfg *Configuration, stats *statistics) *worker {
	weights := cfg.Mix.weights()
	cumulate := make([]int, len(weights))
	total := 0
	for i, w := range weights {
		total += w
		cumulate[i] = total
	}
	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), batchSize)
	}
	return &worker{
		log:      log,
		c:        c,
		rng:      rand.New(rand.NewSource(seed)),
		cumulate: cumulate,
		keyRange: cfg.KeyRange,
		preload:  cfg.Elements,
		limiter:  limiter,
		stats:    stats,
	}
}

// pick an operation according to the mix weights
func (w *worker) choose() operation {
	n := w.rng.Intn(w.cumulate[len(w.cumulate)-1])
	for i, c := range w.cumulate {
		if n < c {
			return operation(i)
		}
	}
	return opGet
}

func (w *worker) step(op operation) {
	key := w.rng.Intn(w.keyRange)
	hit := false
	switch op {
	case opInsert:
		w.serial += 1
		hit = w.c.insert(key, w.serial)
	case opGet:
		hit = w.c.get(key)
	case opRemove:
		hit = w.c.remove(key)
	case opPopMin:
		hit = w.c.popMin()
	case opPopMax:
		hit = w.c.popMax()
	}
	if !hit {
		w.stats.misses.Increment()
	}
	w.stats.ops[op].Increment()
}

// Run - background process: preload, then run the operation mix
// until shutdown and finally verify the container
func (w *worker) Run(args interface{}, shutdown <-chan struct{}) {

	for i := 0; i < w.preload; i += 1 {
		w.serial += 1
		w.c.insert(w.rng.Intn(w.keyRange), w.serial)
	}
	w.log.Infof("%s: preloaded: %d  values: %d", w.stats.name, w.preload, w.c.count())

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		if nil != w.limiter {
			r := w.limiter.ReserveN(time.Now(), batchSize)
			select {
			case <-shutdown:
				r.Cancel()
				break loop
			case <-time.After(r.Delay()):
			}
		}
		for i := 0; i < batchSize; i += 1 {
			w.step(w.choose())
		}
		w.stats.total.Add(batchSize)
		w.stats.interval.Add(batchSize)
	}

	w.err = w.c.check()
	if nil != w.err {
		w.log.Criticalf("%s: inconsistent container: %s", w.stats.name, w.err)
	} else {
		w.log.Infof("%s: finished with values: %d", w.stats.name, w.c.count())
	}
	w.log.Flush()
}
