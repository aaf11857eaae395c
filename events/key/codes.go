// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the key codes, modifiers and chords
// of keyboard events.
package key

//go:generate core generate

// Codes are the non-modifier keys that can make up a [Chord].
// They are named after the USB HID usage names.
type Codes int32 //enums:enum -trim-prefix Code

const (
	CodeUnknown Codes = iota
	CodeTab
	CodeSpacebar
	CodeReturnEnter
	CodeKeypadEnter
	CodeEscape
	CodeBackspace
	CodeDelete
	CodeHome
	CodeEnd
	CodeUpArrow
	CodeDownArrow
	CodeLeftArrow
	CodeRightArrow
)

// Modifiers are the modifier keys held down during a key event.
type Modifiers int32 //enums:bitflag

const (
	// Shift is the shift key.
	Shift Modifiers = 1 << iota

	// Control is the control key.
	Control

	// Alt is the alt or option key.
	Alt

	// Meta is the command key on macOS and the windows key elsewhere.
	Meta
)

// modifierNames are the names of the [Modifiers] in chord order.
var modifierNames = []struct {
	mod  Modifiers
	name string
}{{Shift, "Shift"}, {Control, "Control"}, {Alt, "Alt"}, {Meta, "Meta"}}

// HasFlag returns whether the given modifier is set.
func (m Modifiers) HasFlag(f Modifiers) bool {
	return m&f != 0
}
