// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package access

type focusKinds uint8

const (
	focusUnspecified focusKinds = iota
	focusNone
	focusOn
)

// Focus is the focus change carried by a [TreeUpdate]. It has three
// states: the zero value leaves the current focus as it is,
// [FocusNone] explicitly clears it, and [FocusOn] moves it to a node.
type Focus struct {
	kind focusKinds
	id   NodeID
}

// FocusNone returns a [Focus] that clears the focus.
func FocusNone() Focus {
	return Focus{kind: focusNone}
}

// FocusOn returns a [Focus] that moves the focus to the given node.
// An invalid id is the same as [FocusNone].
func FocusOn(id NodeID) Focus {
	if !id.IsValid() {
		return FocusNone()
	}
	return Focus{kind: focusOn, id: id}
}

// FocusIf returns [FocusOn] the given node if cond is true,
// and [FocusNone] otherwise.
func FocusIf(cond bool, id NodeID) Focus {
	if cond {
		return FocusOn(id)
	}
	return FocusNone()
}

// IsSpecified returns whether the focus change has an opinion,
// either clearing or setting the focus.
func (f Focus) IsSpecified() bool {
	return f.kind != focusUnspecified
}

// ID returns the node that the focus moves to, and false
// if the change is unspecified or clears the focus.
func (f Focus) ID() (NodeID, bool) {
	return f.id, f.kind == focusOn
}

// Apply returns the focused node after applying the change to
// the given previously focused node, where zero means no focus.
func (f Focus) Apply(prev NodeID) NodeID {
	switch f.kind {
	case focusNone:
		return 0
	case focusOn:
		return f.id
	}
	return prev
}

func (f Focus) String() string {
	switch f.kind {
	case focusNone:
		return "none"
	case focusOn:
		return f.id.String()
	}
	return "unspecified"
}
