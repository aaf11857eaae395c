// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keymap

import (
	"fmt"

	"cogentcore.org/access/base/iox/tomlx"
	"cogentcore.org/access/events/key"
)

// file is the TOML form of a [Map]:
//
//	[Chords]
//	Tab = "FocusNext"
//	"Shift+Tab" = "FocusPrev"
type file struct {
	Chords map[string]Functions
}

// Open reads a [Map] from the given TOML file. Chords are normalized,
// and functions that the file does not map are taken from the
// [StandardMap].
func Open(filename string) (Map, error) {
	var f file
	if err := tomlx.Open(&f, filename); err != nil {
		return nil, fmt.Errorf("keymap.Open: %w", err)
	}
	km := make(Map, len(f.Chords))
	for ch, fun := range f.Chords {
		nch, err := key.Chord(ch).Normalize()
		if err != nil {
			return nil, fmt.Errorf("keymap.Open %s: %w", filename, err)
		}
		km[nch] = fun
	}
	km.Update()
	return km, nil
}

// Save writes the map to the given TOML file.
func (km Map) Save(filename string) error {
	f := file{Chords: make(map[string]Functions, len(km))}
	for ch, fun := range km {
		f.Chords[string(ch)] = fun
	}
	return tomlx.Save(&f, filename)
}
