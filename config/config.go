// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the access tools,
// which is read from a TOML file.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"cogentcore.org/access/access"
	"cogentcore.org/access/base/errors"
	"cogentcore.org/access/base/iox/tomlx"
	"cogentcore.org/access/base/logx"
	"cogentcore.org/access/keymap"
)

// Config is the configuration of the access tools.
type Config struct {

	// TreeID is the id of the accessibility tree of the window.
	TreeID access.TreeID `toml:"tree_id"`

	// Encoding is the string encoding of the tree.
	Encoding access.StringEncodings `toml:"encoding"`

	// Keymap is the TOML file of the keymap, which may start with ~
	// for the home directory. The standard keymap is used if it is empty.
	Keymap string `toml:"keymap"`

	// Addr is the address on which the accessibility bridge listens.
	// The bridge is not started if it is empty.
	Addr string `toml:"addr"`

	// Verbose prints info log messages, and debug ones if VeryVerbose.
	Verbose     bool `toml:"verbose"`
	VeryVerbose bool `toml:"very_verbose"`

	// Quiet only prints error log messages.
	Quiet bool `toml:"quiet"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{TreeID: "test", Encoding: access.UTF8, Addr: "localhost:7420"}
}

// DefaultFile returns the configuration file that is read when no
// other one is given: ~/.config/access/config.toml.
func DefaultFile() string {
	return filepath.Join(errors.Log1(homedir.Dir()), ".config", "access", "config.toml")
}

// Open returns the configuration read from the given TOML file,
// with the defaults for any fields that it does not set.
func Open(filename string) (*Config, error) {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := tomlx.Open(c, filename); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if c.TreeID == "" {
		return nil, fmt.Errorf("config %s: tree_id must not be empty", filename)
	}
	return c, nil
}

// Save saves the configuration to the given TOML file.
func (c *Config) Save(filename string) error {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	return tomlx.Save(c, filename)
}

// LogLevel returns the log level selected by the verbosity fields.
func (c *Config) LogLevel() slog.Level {
	return logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
}

// OpenKeymap returns the keymap in [Config.Keymap], expanding ~,
// or the [keymap.StandardMap] if it is not set.
func (c *Config) OpenKeymap() (keymap.Map, error) {
	if c.Keymap == "" {
		return keymap.StandardMap(), nil
	}
	filename, err := c.KeymapFile()
	if err != nil {
		return nil, err
	}
	return keymap.Open(filename)
}

// KeymapFile returns the keymap file with ~ expanded.
func (c *Config) KeymapFile() (string, error) {
	return homedir.Expand(c.Keymap)
}
