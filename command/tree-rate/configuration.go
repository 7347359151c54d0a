// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/containers/avl"
	"github.com/bitmark-inc/containers/configuration"
	"github.com/bitmark-inc/containers/fault"
	"github.com/bitmark-inc/containers/util"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultWorkers  = 1
	defaultElements = 10000
	defaultKeyRange = 100000
	defaultPolicy   = "duplicate"

	defaultLogDirectory = "log"
	defaultLogFile      = "tree-rate.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"worker":          "info",
		logger.DefaultTag: "critical",
	}
)

// MixType - relative weights of each operation
type MixType struct {
	Insert int `gluamapper:"insert" json:"insert"`
	Get    int `gluamapper:"get" json:"get"`
	Remove int `gluamapper:"remove" json:"remove"`
	PopMin int `gluamapper:"pop_min" json:"pop_min"`
	PopMax int `gluamapper:"pop_max" json:"pop_max"`
}

// Configuration - configuration file data
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Workers       int                  `gluamapper:"workers" json:"workers"`
	Elements      int                  `gluamapper:"elements" json:"elements"`
	KeyRange      int                  `gluamapper:"key_range" json:"key_range"`
	Policy        string               `gluamapper:"policy" json:"policy"`
	Mix           MixType              `gluamapper:"mix" json:"mix"`
	RateLimit     int                  `gluamapper:"rate_limit" json:"rate_limit"`
	Baseline      bool                 `gluamapper:"baseline" json:"baseline"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaultConfiguration() *Configuration {
	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Workers:       defaultWorkers,
		Elements:      defaultElements,
		KeyRange:      defaultKeyRange,
		Policy:        defaultPolicy,
		Mix: MixType{
			Insert: 4,
			Get:    4,
			Remove: 2,
			PopMin: 1,
			PopMax: 1,
		},
		RateLimit: 0,
		Baseline:  false,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if err != nil {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration()

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.validate(); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if options.DataDirectory == "" || options.DataDirectory == "~" {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if options.DataDirectory == "." {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); err != nil {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// log file must be a plain name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0o700); err != nil {
			return nil, err
		}
	}

	// done
	return options, nil
}

// check the values that do not depend on the file system
func (c *Configuration) validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: %d", fault.ErrInvalidWorkerCount, c.Workers)
	}
	if c.Elements < 0 {
		return fmt.Errorf("%w: %d", fault.ErrInvalidElementCount, c.Elements)
	}
	if c.KeyRange < 1 {
		return fmt.Errorf("%w: %d", fault.ErrInvalidKeyRange, c.KeyRange)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%w: %d", fault.ErrInvalidRateLimit, c.RateLimit)
	}
	if _, err := c.keyPolicy(); err != nil {
		return err
	}

	weights := c.Mix.weights()
	total := 0
	for _, w := range weights {
		if w < 0 {
			return fmt.Errorf("%w: negative weight: %d", fault.ErrInvalidOperationMix, w)
		}
		total += w
	}
	if 0 == total {
		return fmt.Errorf("%w: all weights are zero", fault.ErrInvalidOperationMix)
	}
	return nil
}

// convert the policy name
func (c *Configuration) keyPolicy() (avl.Policy, error) {
	switch strings.ToLower(c.Policy) {
	case "unique":
		return avl.UniqueKeys, nil
	case "duplicate":
		return avl.DuplicateKeys, nil
	default:
		return avl.UniqueKeys, fmt.Errorf("%w: %q", fault.ErrInvalidPolicy, c.Policy)
	}
}

// weights indexed by operation
func (m MixType) weights() []int {
	w := make([]int, operationCount)
	w[opInsert] = m.Insert
	w[opGet] = m.Get
	w[opRemove] = m.Remove
	w[opPopMin] = m.PopMin
	w[opPopMax] = m.PopMax
	return w
}
