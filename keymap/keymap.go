// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keymap maps key chords to the keyboard functions that
// move and activate the accessibility focus of a window.
package keymap

//go:generate core generate

import (
	"log/slog"
	"slices"

	"cogentcore.org/access/events/key"
)

// Functions are functions that keyboard events can perform on the
// focus of a window.
type Functions int32 //enums:enum

const (
	// None is the function of chords that are not mapped.
	None Functions = iota

	// FocusNext moves the focus to the next focusable sibling (Tab).
	FocusNext

	// FocusPrev moves the focus to the previous focusable sibling (Shift+Tab).
	FocusPrev

	// Activate activates the focused element (Space, Enter).
	Activate
)

// Map is a map between a key sequence (chord) and a specific
// keyboard function. Each chord has a unique function, but multiple
// chords can trigger the same function.
type Map map[key.Chord]Functions

// StandardMap returns the standard [Map].
func StandardMap() Map {
	return Map{
		"Tab":         FocusNext,
		"Shift+Tab":   FocusPrev,
		"Spacebar":    Activate,
		"ReturnEnter": Activate,
		"KeypadEnter": Activate,
	}
}

// Of translates the given chord into a keyboard function,
// returning [None] for chords that are not mapped.
func (km Map) Of(chord key.Chord) Functions {
	if chord == "" {
		return None
	}
	return km[chord]
}

// ChordFor returns the first key chord, in sorted order,
// that triggers the given function, or "" if there is none.
func (km Map) ChordFor(fun Functions) key.Chord {
	var chords []key.Chord
	for ch, f := range km {
		if f == fun {
			chords = append(chords, ch)
		}
	}
	if len(chords) == 0 {
		return ""
	}
	slices.Sort(chords)
	return chords[0]
}

// Update ensures that the given keymap has at least one entry for every
// defined function, grabbing ones from the standard map if not, and also
// eliminates any None entries.
func (km Map) Update() {
	for ch, fun := range km {
		if fun == None {
			slog.Warn("keymap: removing chord mapped to no function", "chord", ch)
			delete(km, ch)
		}
	}
	std := StandardMap()
	for _, f := range _FunctionsValues[1:] {
		if km.ChordFor(f) != "" {
			continue
		}
		for ch, sf := range std {
			if sf != f {
				continue
			}
			if _, used := km[ch]; used {
				continue
			}
			km[ch] = sf
			slog.Debug("keymap: filled in missing function from standard map", "function", f, "chord", ch)
		}
	}
}
