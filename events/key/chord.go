// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"fmt"
	"strings"
)

// Chord represents the key chord associated with a given key function.
// It is a string of the modifiers in the order Shift, Control, Alt,
// Meta, followed by the name of the key code, all separated by +,
// such as "Shift+Tab" or "ReturnEnter".
type Chord string

// NewChord returns a [Chord] for the given key code and modifiers.
func NewChord(code Codes, mods Modifiers) Chord {
	var b strings.Builder
	for _, mn := range modifierNames {
		if mods.HasFlag(mn.mod) {
			b.WriteString(mn.name)
			b.WriteByte('+')
		}
	}
	b.WriteString(code.String())
	return Chord(b.String())
}

// Decode decodes the chord into its code and modifiers.
// Modifier names are accepted in any order and case,
// and "Ctrl" is accepted for Control.
func (ch Chord) Decode() (Codes, Modifiers, error) {
	if ch == "" {
		return CodeUnknown, 0, fmt.Errorf("key.Chord.Decode: empty chord")
	}
	parts := strings.Split(string(ch), "+")
	var mods Modifiers
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "shift":
			mods |= Shift
		case "control", "ctrl":
			mods |= Control
		case "alt":
			mods |= Alt
		case "meta", "command":
			mods |= Meta
		default:
			return CodeUnknown, 0, fmt.Errorf("key.Chord.Decode: unknown modifier %q in chord %q", p, ch)
		}
	}
	var code Codes
	if err := code.SetString(strings.TrimSpace(parts[len(parts)-1])); err != nil {
		return CodeUnknown, 0, fmt.Errorf("key.Chord.Decode: chord %q: %w", ch, err)
	}
	return code, mods, nil
}

// Normalize returns the canonical form of the chord,
// as produced by [NewChord].
func (ch Chord) Normalize() (Chord, error) {
	code, mods, err := ch.Decode()
	if err != nil {
		return "", err
	}
	return NewChord(code, mods), nil
}

func (ch Chord) String() string {
	return string(ch)
}
