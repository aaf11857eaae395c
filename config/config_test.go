// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/access/access"
	"cogentcore.org/access/events/key"
	"cogentcore.org/access/keymap"
)

func TestOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "access.toml")
	require.NoError(t, os.WriteFile(fn, []byte("tree_id = \"main\"\nencoding = \"UTF16\"\nverbose = true\n"), 0666))
	c, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, access.TreeID("main"), c.TreeID)
	assert.Equal(t, access.UTF16, c.Encoding)
	assert.Equal(t, Default().Addr, c.Addr)
	assert.Equal(t, slog.LevelInfo, c.LogLevel())
}

func TestDefaultFile(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "access", "config.toml"), DefaultFile())
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	fn := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(fn, []byte("encoding = \"Latin1\"\n"), 0666))
	_, err = Open(fn)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(fn, []byte("tree_id = \"\"\n"), 0666))
	_, err = Open(fn)
	assert.ErrorContains(t, err, "tree_id")
}

func TestSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "access.toml")
	c := Default()
	c.Addr = ""
	c.Quiet = true
	require.NoError(t, c.Save(fn))
	o, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, c, o)
	assert.Equal(t, slog.LevelError, o.LogLevel())
}

func TestKeymap(t *testing.T) {
	c := Default()
	km, err := c.OpenKeymap()
	require.NoError(t, err)
	assert.Equal(t, keymap.StandardMap(), km)

	c.Keymap = "~/access-keymap.toml"
	fn, err := c.KeymapFile()
	require.NoError(t, err)
	home, err := homedir.Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "access-keymap.toml"), fn)

	c.Keymap = filepath.Join(t.TempDir(), "keymap.toml")
	require.NoError(t, keymap.Map{key.NewChord(key.CodeDownArrow, 0): keymap.FocusNext}.Save(c.Keymap))
	km, err = c.OpenKeymap()
	require.NoError(t, err)
	assert.Equal(t, keymap.FocusNext, km.Of(key.NewChord(key.CodeDownArrow, 0)))
}
