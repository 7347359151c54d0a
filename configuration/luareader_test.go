// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/containers/configuration"
	"github.com/bitmark-inc/containers/fault"
)

type mix struct {
	Insert int `gluamapper:"insert"`
	Remove int `gluamapper:"remove"`
}

type settings struct {
	Name    string            `gluamapper:"name"`
	Workers int               `gluamapper:"workers"`
	Mix     mix               `gluamapper:"mix"`
	Levels  map[string]string `gluamapper:"levels"`
	Self    string            `gluamapper:"self"`
}

const script = `
local M = {}

M.name = "tree"
M.workers = 2 * 2
M.mix = {
    insert = 5,
    remove = 3,
}
M.levels = {
    main = "info",
    worker = "debug",
}
M.self = arg[0] or "none"

return M
`

func TestParseFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "test.conf")
	require.NoError(t, os.WriteFile(fileName, []byte(script), 0o600))

	s := settings{
		Workers: 1,
	}
	require.NoError(t, configuration.ParseConfigurationFile(fileName, &s))

	assert.Equal(t, "tree", s.Name, "name")
	assert.Equal(t, 4, s.Workers, "workers")
	assert.Equal(t, mix{Insert: 5, Remove: 3}, s.Mix, "mix")
	assert.Equal(t, map[string]string{"main": "info", "worker": "debug"}, s.Levels, "levels")
	assert.Equal(t, fileName, s.Self, "arg[0]")
}

func TestParseStringKeepsDefaults(t *testing.T) {
	s := settings{
		Name:    "default",
		Workers: 7,
	}
	require.NoError(t, configuration.ParseConfigurationString(`return { workers = 3 }`, &s))

	assert.Equal(t, "default", s.Name, "unset field keeps default")
	assert.Equal(t, 3, s.Workers, "workers")
	assert.Equal(t, "", s.Self, "arg is empty")
}

func TestParseErrors(t *testing.T) {
	s := settings{}

	err := configuration.ParseConfigurationString(`return 42`, &s)
	assert.True(t, fault.IsErrInvalid(err), "not a table: %v", err)

	err = configuration.ParseConfigurationString(`return {`, &s)
	assert.Error(t, err, "syntax error")

	err = configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "missing.conf"), &s)
	assert.Error(t, err, "missing file")
}
