// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package focus provides the [Controller] that decides where the
// accessibility focus of a window is, in response to window
// activation and keyboard functions, and produces the
// [access.TreeUpdate]s that publish it.
package focus

import (
	"log/slog"

	"cogentcore.org/access/access"
	"cogentcore.org/access/base/slicesx"
	"cogentcore.org/access/keymap"
)

// Tree is the read-only view of an accessibility tree that the
// [Controller] navigates. [store.Snapshot] implements it.
type Tree interface {

	// Node returns the node with the given id, and false if
	// it is not in the tree.
	Node(id access.NodeID) (access.Node, bool)

	// Parent returns the parent of the node with the given id.
	Parent(id access.NodeID) (access.NodeID, bool)

	// Focusable returns the focusable nodes in traversal order.
	Focusable() []access.NodeID
}

// Controller is the focus policy of one window. It tracks the focus
// candidate, which is the node that has the focus while the window is
// active, and whether the window is active. All of its methods are
// total: they never fail, and they report whether there is an update
// to publish.
//
// A Controller is owned by the event loop of its window and must not
// be used concurrently.
type Controller struct {
	candidate access.NodeID
	active    bool
	activator Activator

	// index is the last index of the candidate among its siblings,
	// used as the starting point of the next search.
	index int
}

// NewController returns a new [Controller] with the given initial
// focus candidate and an inactive window. It uses the
// [RenameActivator] until [Controller.SetActivator] is called.
func NewController(initial access.NodeID) *Controller {
	return &Controller{candidate: initial, activator: RenameActivator, index: -1}
}

// SetActivator sets the [Activator] that builds the replacement
// node of an activated element.
func (c *Controller) SetActivator(a Activator) *Controller {
	c.activator = a
	return c
}

// Candidate returns the node that has the focus while the window is active.
func (c *Controller) Candidate() access.NodeID {
	return c.candidate
}

// IsActive returns whether the window is active.
func (c *Controller) IsActive() bool {
	return c.active
}

// Focus returns the focus to publish for the current state:
// the candidate if the window is active, and no focus otherwise.
func (c *Controller) Focus() access.Focus {
	return access.FocusIf(c.active, c.candidate)
}

// SetWindowActive records a change of window activation, and returns
// the focus-only update that publishes it: the candidate on
// activation, and an explicit [access.FocusNone] on deactivation.
func (c *Controller) SetWindowActive(active bool) access.TreeUpdate {
	c.active = active
	return access.FocusUpdate(c.Focus())
}

// Advance moves the candidate to the next focusable sibling in
// children order, wrapping around. The candidate moves even while
// the window is inactive, but there is only an update to publish
// while it is active.
func (c *Controller) Advance(tree Tree) (access.TreeUpdate, bool) {
	return c.move(tree, 1)
}

// Retreat moves the candidate to the previous focusable sibling,
// wrapping around, like [Controller.Advance].
func (c *Controller) Retreat(tree Tree) (access.TreeUpdate, bool) {
	return c.move(tree, -1)
}

func (c *Controller) move(tree Tree, delta int) (access.TreeUpdate, bool) {
	sibs := c.siblings(tree)
	idx := slicesx.Search(sibs, func(id access.NodeID) bool { return id == c.candidate }, c.index)
	if idx < 0 {
		// a candidate that is no longer in the tree restarts at
		// the first (or last) focusable node
		idx = -1
		if delta < 0 {
			idx = 0
		}
	}
	next, ok := slicesx.Cycle(sibs, idx, delta)
	if !ok {
		return access.TreeUpdate{}, false
	}
	c.candidate = next
	c.index = ((idx+delta)%len(sibs) + len(sibs)) % len(sibs)
	slog.Debug("focus: moved candidate", "candidate", c.candidate, "active", c.active)
	if !c.active {
		return access.TreeUpdate{}, false
	}
	return access.FocusUpdate(access.FocusOn(c.candidate)), true
}

// siblings returns the focusable siblings of the candidate, including
// itself, in children order. If the candidate has no parent in the
// tree, all of the focusable nodes are its siblings.
func (c *Controller) siblings(tree Tree) []access.NodeID {
	parent, ok := tree.Parent(c.candidate)
	if !ok {
		return tree.Focusable()
	}
	pn, ok := tree.Node(parent)
	if !ok {
		return tree.Focusable()
	}
	var sibs []access.NodeID
	for _, id := range pn.Children {
		if n, ok := tree.Node(id); ok && n.Focusable {
			sibs = append(sibs, id)
		}
	}
	return sibs
}

// Activate activates the candidate, returning an update with the
// replacement node built by the [Activator] and, while the window is
// active, the focus on the candidate again so that the update is
// self-describing. There is no update if the candidate is not in the tree.
func (c *Controller) Activate(tree Tree) (access.TreeUpdate, bool) {
	n, ok := tree.Node(c.candidate)
	if !ok {
		slog.Debug("focus: activated candidate is not in the tree", "candidate", c.candidate)
		return access.TreeUpdate{}, false
	}
	u := access.TreeUpdate{Nodes: []access.Node{c.activator.Activate(n)}}
	if c.active {
		u.Focus = access.FocusOn(c.candidate)
	}
	return u, true
}

// HandleKey performs the given keyboard function, returning
// whether there is an update to publish.
func (c *Controller) HandleKey(fun keymap.Functions, tree Tree) (access.TreeUpdate, bool) {
	switch fun {
	case keymap.FocusNext:
		return c.Advance(tree)
	case keymap.FocusPrev:
		return c.Retreat(tree)
	case keymap.Activate:
		return c.Activate(tree)
	}
	return access.TreeUpdate{}, false
}
