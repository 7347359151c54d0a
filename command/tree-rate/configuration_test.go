// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/containers/avl"
	"github.com/bitmark-inc/containers/fault"
)

func writeConfiguration(t *testing.T, script string) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), "tree-rate.conf")
	require.NoError(t, os.WriteFile(fileName, []byte(script), 0o600))
	return fileName
}

func TestSampleConfiguration(t *testing.T) {
	script, err := os.ReadFile("tree-rate.conf.sample")
	require.NoError(t, err)
	fileName := writeConfiguration(t, string(script))

	c, err := getConfiguration(fileName)
	require.NoError(t, err)

	assert.Equal(t, filepath.Dir(fileName), c.DataDirectory, "data directory")
	assert.Equal(t, 4, c.Workers, "workers")
	assert.Equal(t, 100000, c.Elements, "elements")
	assert.Equal(t, 200000, c.KeyRange, "key range")
	assert.True(t, c.Baseline, "baseline")
	assert.Equal(t, MixType{Insert: 4, Get: 4, Remove: 2, PopMin: 1, PopMax: 1}, c.Mix, "mix")
	assert.Equal(t, filepath.Join(filepath.Dir(fileName), defaultLogDirectory), c.Logging.Directory, "log directory")
	assert.DirExists(t, c.Logging.Directory, "log directory created")

	policy, err := c.keyPolicy()
	require.NoError(t, err)
	assert.Equal(t, avl.DuplicateKeys, policy, "policy")
}

func TestDefaultsApply(t *testing.T) {
	fileName := writeConfiguration(t, `return { data_directory = "." }`)

	c, err := getConfiguration(fileName)
	require.NoError(t, err)

	assert.Equal(t, defaultWorkers, c.Workers, "workers")
	assert.Equal(t, defaultElements, c.Elements, "elements")
	assert.Equal(t, defaultKeyRange, c.KeyRange, "key range")
	assert.False(t, c.Baseline, "baseline")
	assert.Equal(t, defaultLogFile, c.Logging.File, "log file")
}

func TestMissingDataDirectory(t *testing.T) {
	fileName := writeConfiguration(t, `return { workers = 2 }`)

	_, err := getConfiguration(fileName)
	assert.Error(t, err, "blank data directory")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		title  string
		modify func(c *Configuration)
		err    error
	}{
		{"workers", func(c *Configuration) { c.Workers = 0 }, fault.ErrInvalidWorkerCount},
		{"elements", func(c *Configuration) { c.Elements = -1 }, fault.ErrInvalidElementCount},
		{"key range", func(c *Configuration) { c.KeyRange = 0 }, fault.ErrInvalidKeyRange},
		{"rate limit", func(c *Configuration) { c.RateLimit = -5 }, fault.ErrInvalidRateLimit},
		{"policy", func(c *Configuration) { c.Policy = "sometimes" }, fault.ErrInvalidPolicy},
		{"negative weight", func(c *Configuration) { c.Mix.Get = -1 }, fault.ErrInvalidOperationMix},
		{"zero weights", func(c *Configuration) { c.Mix = MixType{} }, fault.ErrInvalidOperationMix},
	}

	require.NoError(t, defaultConfiguration().validate(), "defaults are valid")

	for _, test := range tests {
		c := defaultConfiguration()
		test.modify(c)
		err := c.validate()
		assert.ErrorIs(t, err, test.err, test.title)
		assert.True(t, fault.IsErrInvalid(err), "%s: error class", test.title)
	}
}

func TestPolicyNames(t *testing.T) {
	c := defaultConfiguration()

	c.Policy = "Unique"
	p, err := c.keyPolicy()
	require.NoError(t, err)
	assert.Equal(t, avl.UniqueKeys, p, "unique")

	c.Policy = "DUPLICATE"
	p, err = c.keyPolicy()
	require.NoError(t, err)
	assert.Equal(t, avl.DuplicateKeys, p, "duplicate")
}
