// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/access/config"
	"cogentcore.org/access/hello"
)

func newTestConsole(t *testing.T) (*console, *bytes.Buffer) {
	w, err := newWindow(config.Default())
	require.NoError(t, err)
	var b bytes.Buffer
	return newConsole(w, &b), &b
}

func exec(t *testing.T, c *console, lines ...string) {
	t.Helper()
	for _, l := range lines {
		require.NoError(t, c.Exec(l))
	}
	require.NoError(t, c.w.ProcessEvents())
}

func TestConsole(t *testing.T) {
	c, b := newTestConsole(t)
	exec(t, c, "attach", "activate", "key Tab")
	assert.Equal(t, hello.Button2ID, c.w.Store().Focus().ID)

	exec(t, c, `key "Shift+Tab" Spacebar`)
	n, _ := c.w.Store().Tree().Node(hello.Button1ID)
	assert.Equal(t, "You pressed button 1", n.Name)

	exec(t, c, "tree")
	assert.Contains(t, b.String(), "test v")
	assert.Contains(t, b.String(), `* #2 Button "You pressed button 1" focusable`)

	b.Reset()
	exec(t, c, "yaml")
	assert.Contains(t, b.String(), "name: Hello world")

	exec(t, c, "deactivate")
	assert.False(t, c.w.Store().Focus().Has())

	exec(t, c, "detach", "", "help")
	assert.False(t, c.w.Store().IsActive())
}

func TestConsoleErrors(t *testing.T) {
	c, _ := newTestConsole(t)
	assert.Error(t, c.Exec("key"))
	assert.Error(t, c.Exec("key Banana"))
	assert.Error(t, c.Exec("detach"))
	assert.Error(t, c.Exec("jump"))
	assert.Error(t, c.Exec(`key "Tab`))
	assert.ErrorIs(t, c.Exec("quit"), errQuit)
}

func TestConsoleRun(t *testing.T) {
	c, b := newTestConsole(t)
	c.Run(strings.NewReader("attach\nactivate\njump\nquit\nkey Tab\n"))
	require.NoError(t, c.w.ProcessEvents())
	assert.True(t, c.w.IsClosed())
	assert.Equal(t, hello.Button1ID, c.w.Store().Focus().ID)
	assert.Contains(t, b.String(), `unknown command "jump"`)
}

func TestDump(t *testing.T) {
	cmd := newRootCmd()
	var b bytes.Buffer
	cmd.SetOut(&b)
	cmd.SetArgs([]string{"dump", "-q"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, b.String(), "root: 1")
	assert.Contains(t, b.String(), "name: Button 2")
}

func TestLoadConfig(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "access.toml")
	c := config.Default()
	c.TreeID = "file"
	require.NoError(t, c.Save(fn))

	opts := &options{}
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", fn, "--addr", "off", "-q"}))
	// flags are bound to the options of the command itself
	opts.config, _ = cmd.Flags().GetString("config")
	opts.addr, _ = cmd.Flags().GetString("addr")
	opts.quiet, _ = cmd.Flags().GetBool("quiet")
	got, err := loadConfig(cmd, opts)
	require.NoError(t, err)
	assert.Equal(t, c.TreeID, got.TreeID)
	assert.Empty(t, got.Addr)
	assert.True(t, got.Quiet)
}
