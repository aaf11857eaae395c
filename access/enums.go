// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package access

// Roles are the semantic roles of [Node]s, which tell an assistive
// technology what kind of element a node is and how to present it.
type Roles int32 //enums:enum

const (
	// Unknown is the role of a node whose kind is not known.
	Unknown Roles = iota

	// Window is a top-level window, typically the root of a tree.
	Window

	// Button can be pressed to perform an action.
	Button

	// CheckBox can be toggled; see [Node.Toggled].
	CheckBox

	// Label is static descriptive text.
	Label

	// TextInput accepts text; its current text is [Node.Value].
	TextInput

	// Group is a generic container of other nodes.
	Group

	List

	ListItem

	Link

	Image

	Menu

	MenuItem

	// Dialog is a window-like container that is modal
	// with respect to its owner.
	Dialog
)

// Toggles are the toggled states of checkable elements.
type Toggles int32 //enums:enum

const (
	// NotToggled is the default, unchecked state.
	NotToggled Toggles = iota

	// Toggled is the checked state.
	Toggled

	// Mixed is the indeterminate state of a toggle whose
	// descendants are partly checked.
	Mixed
)

// StringEncodings are the encodings used to interpret
// all of the textual fields of a tree.
type StringEncodings int32 //enums:enum

const (
	UTF8 StringEncodings = iota
	UTF16
)
