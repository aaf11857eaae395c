// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package access provides the value types of an accessibility tree:
// [Node], the [Tree] descriptor, the three-way [Focus] change and the
// [TreeUpdate] delta that carries them to a tree store.
//
// All of the types are values. A Node is never patched in place; a
// changed element is published as a new Node with the same [NodeID],
// built from the old one with the Set methods, which return copies.
package access

//go:generate core generate

import "strconv"

// NodeID is an opaque, process-unique handle of a [Node].
// Zero is never a valid id.
type NodeID uint64

// IsValid returns whether the id is non-zero.
func (id NodeID) IsValid() bool {
	return id != 0
}

func (id NodeID) String() string {
	if id == 0 {
		return "none"
	}
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// TreeID identifies a logical accessibility tree.
type TreeID string
