// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/containers/background"
	"github.com/bitmark-inc/containers/fault"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "time", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 't'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if err != nil {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--time=N{h|m|s}] --config-file=FILE", program)
	}

	if len(options["config-file"]) != 1 {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	if len(arguments) != 0 {
		exitwithstatus.Message("%s: extraneous extra arguments", program)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	sampleTime := 10 * time.Second
	if len(options["time"]) > 0 {
		sampleTime, err = time.ParseDuration(options["time"][0])
		if err != nil {
			exitwithstatus.Message("%s: convert time error: %s", program, err)
		}
		if sampleTime.Seconds() < 1 {
			exitwithstatus.Message("%s: invalid time: %s", program, sampleTime)
		}
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if err != nil {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); err != nil {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); err != nil {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Debugf("theConfiguration: %v", theConfiguration)

	policy, err := theConfiguration.keyPolicy()
	fault.PanicIfError("key policy", err) // already validated

	// one set of statistics per kind of container
	avlStats := &statistics{name: "avl"}
	rbStats := &statistics{name: "rbtree"}
	runs := []*statistics{avlStats}
	if theConfiguration.Baseline {
		runs = append(runs, rbStats)
	}

	wlog := logger.New("worker")
	seed := time.Now().UnixNano()
	workers := make([]*worker, 0, len(runs)*theConfiguration.Workers)
	processes := make(background.Processes, 0, cap(workers))
	for i := 0; i < theConfiguration.Workers; i += 1 {
		w := newWorker(wlog, newAVLContainer(policy), seed+int64(i), theConfiguration, avlStats)
		workers = append(workers, w)
		processes = append(processes, w)
		if theConfiguration.Baseline {
			b := newWorker(wlog, newRBContainer(policy), seed+int64(i), theConfiguration, rbStats)
			workers = append(workers, b)
			processes = append(processes, b)
		}
	}

	if !quiet {
		fmt.Printf("running %d workers with policy: %s for: %7.1f seconds\n", len(workers), policy, sampleTime.Seconds())
	}
	log.Infof("workers: %d  policy: %s  time: %s", len(workers), policy, sampleTime)

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	start := time.Now()
	p := background.Start(processes, nil)

	ticker := time.NewTicker(time.Second)
	timeout := time.After(sampleTime)
wait_loop:
	for {
		select {
		case <-ticker.C:
			for _, s := range runs {
				n := s.interval.Reset()
				log.Debugf("%s: interval operations: %d", s.name, n)
				if verbose {
					fmt.Printf("%-8s %10d operations/second\n", s.name, n)
				}
			}
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			if !quiet {
				fmt.Printf("\nreceived signal: %v\n", sig)
			}
			break wait_loop
		case <-timeout:
			break wait_loop
		}
	}
	ticker.Stop()

	p.Stop()
	elapsed := time.Since(start).Seconds()

	if !quiet {
		fmt.Printf("finished\n")
	}

	failed := 0
	for _, w := range workers {
		if nil != w.err {
			failed += 1
		}
	}

	for _, s := range runs {
		fmt.Printf("%s:\n", s.name)
		for op := operation(0); op < operationCount; op += 1 {
			fmt.Printf("  %-8s %12d\n", op, s.ops[op].Uint64())
		}
		fmt.Printf("  misses:  %12d\n", s.misses.Uint64())
		fmt.Printf("  total:   %12d   operations in: %7.1f seconds\n", s.total.Uint64(), elapsed)
		fmt.Printf("  rate:    %14.1f operations/second\n", s.total.Rate(elapsed))
		log.Infof("%s: total: %d  rate: %.1f", s.name, s.total.Uint64(), s.total.Rate(elapsed))
	}

	if failed > 0 {
		log.Criticalf("inconsistent containers: %d", failed)
		exitwithstatus.Message("%s: %d containers failed verification", program, failed)
	}
}
