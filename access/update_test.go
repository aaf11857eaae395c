// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocus(t *testing.T) {
	var unspecified Focus
	assert.False(t, unspecified.IsSpecified())
	assert.Equal(t, NodeID(7), unspecified.Apply(7))
	assert.Equal(t, "unspecified", unspecified.String())

	none := FocusNone()
	assert.True(t, none.IsSpecified())
	_, ok := none.ID()
	assert.False(t, ok)
	assert.Equal(t, NodeID(0), none.Apply(7))

	on := FocusOn(3)
	id, ok := on.ID()
	assert.True(t, ok)
	assert.Equal(t, NodeID(3), id)
	assert.Equal(t, NodeID(3), on.Apply(7))
	assert.Equal(t, "#3", on.String())

	assert.Equal(t, none, FocusOn(0))
	assert.Equal(t, on, FocusIf(true, 3))
	assert.Equal(t, none, FocusIf(false, 3))
}

func TestTreeUpdate(t *testing.T) {
	assert.True(t, TreeUpdate{}.IsEmpty())
	assert.False(t, FocusUpdate(FocusNone()).IsEmpty())

	tr := NewTree("test", 1, UTF8)
	u := TreeUpdate{
		Clear: 1,
		Nodes: []Node{NewNode(1, Window), NewNode(2, Button)},
		Tree:  &tr,
		Focus: FocusOn(2),
	}
	assert.False(t, u.IsEmpty())
	assert.Equal(t, "{clear=#1 nodes=[#1 #2] tree=test/#1/UTF8 focus=#2}", u.String())
	assert.Equal(t, "{focus=none}", FocusUpdate(FocusNone()).String())
}

func TestNodeID(t *testing.T) {
	assert.False(t, NodeID(0).IsValid())
	assert.True(t, NodeID(1).IsValid())
	assert.Equal(t, "none", NodeID(0).String())
}
