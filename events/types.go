// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

//go:generate core generate

// Types determines the type of an event delivered to a window.
// Only the events that change the semantics of the accessibility
// tree are represented; everything else is handled by the host.
type Types int32 //enums:enum

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// KeyChord is sent when a non-modifier key is pressed, and it
	// contains the code and modifiers of the full chord, suitable
	// for translation into keyboard functions through a keymap.
	KeyChord

	// Window reports on changes in the window activation and closing.
	// See [WindowEvent.Action] for which.
	Window

	// Custom is a host-defined event with an arbitrary Data field.
	Custom
)

// WinActions are the actions of [Window] events.
type WinActions int32 //enums:enum

const (
	// NoWinAction is the zero value.
	NoWinAction WinActions = iota

	// Focus means that the window has gained activation.
	Focus

	// FocusLost means that the window has lost activation.
	FocusLost

	// Close means that the window is closing.
	Close
)
