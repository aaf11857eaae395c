// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"io"
	"strings"

	"cogentcore.org/access/access"
	"cogentcore.org/access/base/iox/yamlx"
)

const (
	// Continue = true can be returned from a [Snapshot.Walk] function
	// to continue walking.
	Continue = true

	// Break = false can be returned from a [Snapshot.Walk] function
	// to stop walking.
	Break = false
)

// FocusState is the focus of a [Store].
type FocusState struct {

	// ID is the focused node, or zero if there is no focus.
	ID access.NodeID `json:"id" yaml:"id"`

	// WindowActive is whether the host window is active, as last
	// told to the store with [Store.SetWindowActive].
	WindowActive bool `json:"windowActive" yaml:"windowActive"`
}

// Has returns whether there is a focused node.
func (f FocusState) Has() bool {
	return f.ID.IsValid()
}

// Snapshot is an immutable view of the content of a [Store] at one
// version. The zero Snapshot is the empty content of an Uninitialized
// store. Snapshots stay valid and unchanged after later updates.
type Snapshot struct {

	// Version is the number of updates applied to produce the snapshot.
	Version uint64

	// Tree is the tree descriptor.
	Tree access.Tree

	// Focus is the focus at the same version.
	Focus FocusState

	st *state
}

// IsEmpty returns whether the snapshot has no content, which is the
// case for an Uninitialized store.
func (s Snapshot) IsEmpty() bool {
	return s.st == nil
}

// Len returns the number of nodes.
func (s Snapshot) Len() int {
	if s.st == nil {
		return 0
	}
	return s.st.nodes.Len()
}

// Has returns whether the node with the given id is in the tree.
func (s Snapshot) Has(id access.NodeID) bool {
	return s.st != nil && s.st.nodes.Has(id)
}

// Node returns a copy of the node with the given id,
// and false if it is not in the tree.
func (s Snapshot) Node(id access.NodeID) (access.Node, bool) {
	if s.st == nil {
		return access.Node{}, false
	}
	n, ok := s.st.nodes.AtTry(id)
	if !ok {
		return access.Node{}, false
	}
	return n.Clone(), true
}

// Root returns a copy of the root node.
func (s Snapshot) Root() (access.Node, bool) {
	return s.Node(s.Tree.Root)
}

// IDs returns the ids of all of the nodes, in the order in which
// they were first added.
func (s Snapshot) IDs() []access.NodeID {
	if s.st == nil {
		return nil
	}
	return append([]access.NodeID(nil), s.st.nodes.Keys...)
}

// Parent returns the parent of the node with the given id. A node
// that is the child of several nodes has the first of them as its
// parent, in node order.
func (s Snapshot) Parent(id access.NodeID) (access.NodeID, bool) {
	if s.st == nil {
		return 0, false
	}
	p, ok := s.st.parents[id]
	return p, ok
}

// Walk calls the given function on the root and then on each node
// reachable from it, depth first in children order, with the depth
// of the node below the root. The function returns [Continue] to
// walk into the children of the node, and [Break] to skip them.
// Each node is visited once. The node passed to the function
// must not be modified.
func (s Snapshot) Walk(fun func(n access.Node, depth int) bool) {
	if s.st == nil {
		return
	}
	seen := map[access.NodeID]bool{}
	var walk func(id access.NodeID, depth int)
	walk = func(id access.NodeID, depth int) {
		if seen[id] {
			return
		}
		seen[id] = true
		n, ok := s.st.nodes.AtTry(id)
		if !ok {
			return
		}
		if !fun(n, depth) {
			return
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(s.Tree.Root, 0)
}

// Focusable returns the ids of the focusable nodes that are
// reachable from the root, in traversal order.
func (s Snapshot) Focusable() []access.NodeID {
	var ids []access.NodeID
	s.Walk(func(n access.Node, depth int) bool {
		if n.Focusable {
			ids = append(ids, n.ID)
		}
		return Continue
	})
	return ids
}

// Equal returns whether the two snapshots have the same descriptor,
// nodes and focus, regardless of their versions.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Tree != o.Tree || s.Focus != o.Focus || s.Len() != o.Len() {
		return false
	}
	if s.st == nil || o.st == nil {
		return s.st == o.st
	}
	for i, id := range s.st.nodes.Keys {
		on, ok := o.st.nodes.AtTry(id)
		if !ok || !s.st.nodes.Values[i].Equal(on) {
			return false
		}
	}
	return true
}

// String returns an indented outline of the tree, with the
// focused node marked with a *.
func (s Snapshot) String() string {
	if s.st == nil {
		return "(empty)\n"
	}
	var b strings.Builder
	s.Walk(func(n access.Node, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth))
		if n.ID == s.Focus.ID {
			b.WriteString("* ")
		}
		b.WriteString(n.String())
		b.WriteByte('\n')
		return Continue
	})
	return b.String()
}

// dump is the serialized form of a [Snapshot].
type dump struct {
	Version uint64        `yaml:"version"`
	Tree    access.Tree   `yaml:"tree"`
	Focus   FocusState    `yaml:"focus"`
	Nodes   []access.Node `yaml:"nodes"`
}

// WriteYAML writes the snapshot to the given writer as YAML,
// with the nodes in the order of [Snapshot.IDs].
func (s Snapshot) WriteYAML(w io.Writer) error {
	d := dump{Version: s.Version, Tree: s.Tree, Focus: s.Focus}
	if s.st != nil {
		d.Nodes = s.st.nodes.Values
	}
	return yamlx.Write(d, w)
}
