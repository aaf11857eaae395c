// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"log/slog"

	"cogentcore.org/access/access"
	"cogentcore.org/access/base/keylist"
)

// state is one immutable version of the content of a [Store].
// A nil state is the Uninitialized store.
type state struct {
	version uint64
	tree    access.Tree
	nodes   *keylist.List[access.NodeID, access.Node]

	// parents maps each child to its first parent in node order.
	parents map[access.NodeID]access.NodeID

	focus access.NodeID
}

// apply returns the state that results from applying the given
// update to st, or an error if the update is inconsistent, in which
// case st is untouched.
func (st *state) apply(u access.TreeUpdate) (*state, error) {
	if st == nil && u.Tree == nil {
		return nil, &ConsistencyError{Reason: "the first update of a tree must have a tree descriptor"}
	}
	next := &state{}
	if st != nil {
		next.version = st.version
		next.tree = st.tree
		next.focus = st.focus
		next.nodes = st.nodes.Clone()
	} else {
		next.nodes = keylist.New[access.NodeID, access.Node]()
	}

	var cleared map[access.NodeID]bool
	if st != nil && u.Clear.IsValid() {
		cleared = st.reachable(u.Clear)
	}

	supplied := make(map[access.NodeID]bool, len(u.Nodes))
	for _, n := range u.Nodes {
		if !n.ID.IsValid() {
			return nil, &ConsistencyError{Reason: "node has the invalid id zero"}
		}
		next.nodes.Set(n.ID, n.Clone())
		supplied[n.ID] = true
	}

	if u.Tree != nil {
		next.tree = *u.Tree
	}

	if len(cleared) > 0 {
		keep := next.reachable(next.tree.Root)
		next.nodes.DeleteFunc(func(id access.NodeID, _ access.Node) bool {
			return cleared[id] && !supplied[id] && !keep[id]
		})
	}

	if err := next.validate(); err != nil {
		return nil, err
	}

	if id, ok := u.Focus.ID(); ok && !next.nodes.Has(id) {
		return nil, &ConsistencyError{Reason: "focus target is not in the tree", Node: id}
	}
	next.focus = u.Focus.Apply(next.focus)
	if next.focus.IsValid() && !next.nodes.Has(next.focus) {
		slog.Debug("store: focused node was cleared", "node", next.focus)
		next.focus = 0
	}

	next.version++
	next.parents = next.makeParents()
	return next, nil
}

// validate checks the reference closure of the state.
func (st *state) validate() error {
	if !st.tree.Root.IsValid() {
		return &ConsistencyError{Reason: "tree has no root"}
	}
	if !st.nodes.Has(st.tree.Root) {
		return &ConsistencyError{Reason: "root is not in the tree", Node: st.tree.Root}
	}
	for _, n := range st.nodes.Values {
		for _, c := range n.Children {
			if !st.nodes.Has(c) {
				return &ConsistencyError{Reason: "unresolved child", Node: n.ID, Child: c}
			}
		}
	}
	return nil
}

// reachable returns the set of nodes reachable from the given node,
// including itself if it is present.
func (st *state) reachable(from access.NodeID) map[access.NodeID]bool {
	seen := map[access.NodeID]bool{}
	stack := []access.NodeID{from}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			continue
		}
		n, ok := st.nodes.AtTry(id)
		if !ok {
			continue
		}
		seen[id] = true
		stack = append(stack, n.Children...)
	}
	return seen
}

func (st *state) makeParents() map[access.NodeID]access.NodeID {
	parents := make(map[access.NodeID]access.NodeID, st.nodes.Len())
	for _, n := range st.nodes.Values {
		for _, c := range n.Children {
			if _, has := parents[c]; !has {
				parents[c] = n.ID
			}
		}
	}
	return parents
}
