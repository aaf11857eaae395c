// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package access

import (
	"fmt"
	"strings"
)

// TreeUpdate is an atomic change to an accessibility tree.
// It is applied in the order: Clear, Nodes, Tree, Focus.
type TreeUpdate struct {

	// Clear, if valid, is the root of a subtree that is discarded
	// before Nodes are applied. Cleared nodes that are still reachable
	// from the root of the tree after the update are kept.
	Clear NodeID

	// Nodes are new or replaced nodes. Each one replaces any existing
	// node with the same id.
	Nodes []Node

	// Tree, if non-nil, replaces the tree descriptor. The first update
	// of a tree must have one.
	Tree *Tree

	// Focus is the change of focus; the zero value leaves it as it is.
	Focus Focus
}

// FocusUpdate returns a [TreeUpdate] that only changes the focus.
func FocusUpdate(f Focus) TreeUpdate {
	return TreeUpdate{Focus: f}
}

// IsEmpty returns whether the update changes nothing.
func (u TreeUpdate) IsEmpty() bool {
	return !u.Clear.IsValid() && len(u.Nodes) == 0 && u.Tree == nil && !u.Focus.IsSpecified()
}

// String returns a one-line summary of the update for logging.
func (u TreeUpdate) String() string {
	var parts []string
	if u.Clear.IsValid() {
		parts = append(parts, "clear="+u.Clear.String())
	}
	if len(u.Nodes) > 0 {
		ids := make([]string, len(u.Nodes))
		for i, n := range u.Nodes {
			ids[i] = n.ID.String()
		}
		parts = append(parts, "nodes=["+strings.Join(ids, " ")+"]")
	}
	if u.Tree != nil {
		parts = append(parts, fmt.Sprintf("tree=%s/%v/%v", u.Tree.ID, u.Tree.Root, u.Tree.StringEncoding))
	}
	if u.Focus.IsSpecified() {
		parts = append(parts, "focus="+u.Focus.String())
	}
	return "{" + strings.Join(parts, " ") + "}"
}
