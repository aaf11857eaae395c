// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bridge

import (
	"cogentcore.org/access/access"
	"cogentcore.org/access/store"
)

// Message is the JSON form of a [store.Snapshot] sent to consumers.
type Message struct {
	Version uint64        `json:"version"`
	Tree    access.Tree   `json:"tree"`
	Nodes   []access.Node `json:"nodes"`
	Focus   Focus         `json:"focus"`
}

// Focus is the JSON form of a [store.FocusState].
type Focus struct {
	ID           access.NodeID `json:"id"`
	Has          bool          `json:"has"`
	WindowActive bool          `json:"windowActive"`
}

// NewFocus returns the [Focus] message for the given focus.
func NewFocus(f store.FocusState) Focus {
	return Focus{ID: f.ID, Has: f.Has(), WindowActive: f.WindowActive}
}

// NewMessage returns the [Message] for the given snapshot,
// with the nodes in the order of [store.Snapshot.IDs].
func NewMessage(s store.Snapshot) Message {
	m := Message{Version: s.Version, Tree: s.Tree, Focus: NewFocus(s.Focus), Nodes: []access.Node{}}
	for _, id := range s.IDs() {
		if n, ok := s.Node(id); ok {
			m.Nodes = append(m.Nodes, n)
		}
	}
	return m
}

// Node returns the node with the given id, and false if
// it is not in the message.
func (m *Message) Node(id access.NodeID) (access.Node, bool) {
	for _, n := range m.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return access.Node{}, false
}
