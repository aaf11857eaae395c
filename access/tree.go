// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package access

// Tree is the descriptor of an accessibility tree: which tree it is,
// which node is its root, and how its text is encoded.
type Tree struct {
	ID             TreeID          `json:"id" yaml:"id"`
	Root           NodeID          `json:"root" yaml:"root"`
	StringEncoding StringEncodings `json:"encoding" yaml:"encoding"`
}

// NewTree returns a new [Tree] descriptor.
func NewTree(id TreeID, root NodeID, encoding StringEncodings) Tree {
	return Tree{ID: id, Root: root, StringEncoding: encoding}
}
