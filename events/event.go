// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the window and keyboard events that drive
// the accessibility tree of a window, along with a lock-free [Queue]
// for delivering them and [Listeners] for handling them.
package events

import (
	"fmt"
	"time"

	"cogentcore.org/access/events/key"
)

// Event is the interface for all events.
// Events are always handled through pointers.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as having been processed,
	// which stops any further [Listeners] from receiving it.
	SetHandled()
}

// Base is the base type for events.
// It is designed to be embedded in other event types.
type Base struct {

	// Typ is the type of event.
	Typ Types

	// GenTime records the time when the event was first generated.
	GenTime time.Time

	// Data is arbitrary data for [Custom] events.
	Data any

	handled bool
}

// NewBase returns a new [Base] of the given type, generated now.
func NewBase(typ Types) Base {
	return Base{Typ: typ, GenTime: time.Now()}
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

func (ev *Base) IsHandled() bool {
	return ev.handled
}

func (ev *Base) SetHandled() {
	ev.handled = true
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Data: %v, Time: %v}", ev.Typ, ev.Data, ev.GenTime.Format("04:05"))
}

// NewCustom returns a new [Custom] event with the given data.
func NewCustom(data any) *Base {
	ev := NewBase(Custom)
	ev.Data = data
	return &ev
}

// Key is a [KeyChord] event.
type Key struct {
	Base

	// Code is the key that was pressed.
	Code key.Codes

	// Mods are the modifiers that were held down.
	Mods key.Modifiers
}

// NewKey returns a new [Key] event for the given key and modifiers.
func NewKey(code key.Codes, mods key.Modifiers) *Key {
	return &Key{Base: NewBase(KeyChord), Code: code, Mods: mods}
}

// Chord returns the chord of the key event, for lookup in a keymap.
func (ev *Key) Chord() key.Chord {
	return key.NewChord(ev.Code, ev.Mods)
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Chord: %v, Time: %v}", ev.Typ, ev.Chord(), ev.GenTime.Format("04:05"))
}

// WindowEvent is a [Window] event.
type WindowEvent struct {
	Base

	// Action is what happened to the window.
	Action WinActions
}

// NewWindow returns a new [WindowEvent] with the given action.
func NewWindow(action WinActions) *WindowEvent {
	return &WindowEvent{Base: NewBase(Window), Action: action}
}

// NewWindowActivation returns a new [WindowEvent] reporting that the
// window gained ([Focus]) or lost ([FocusLost]) activation.
func NewWindowActivation(active bool) *WindowEvent {
	if active {
		return NewWindow(Focus)
	}
	return NewWindow(FocusLost)
}

func (ev *WindowEvent) String() string {
	return fmt.Sprintf("%v{Action: %v, Time: %v}", ev.Typ, ev.Action, ev.GenTime.Format("04:05"))
}
