// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package access

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNode(t *testing.T) {
	n := NewNode(2, Button)
	assert.Equal(t, NodeID(2), n.ID)
	assert.Equal(t, Button, n.Role)
	assert.False(t, n.HasName())
	assert.Empty(t, n.Children)
	assert.False(t, n.Focusable)
	assert.Equal(t, NotToggled, n.Toggled)
}

func TestNodeSettersCopy(t *testing.T) {
	base := NewNode(1, Window).SetChildren(2, 3)
	named := base.SetName("Hello world").AddChildren(4)
	assert.Equal(t, "", base.Name)
	assert.Equal(t, []NodeID{2, 3}, base.Children)
	assert.Equal(t, []NodeID{2, 3, 4}, named.Children)

	p1 := base.SetProperty("placeholder", "x")
	p2 := p1.SetProperty("placeholder", "y")
	v, ok := p1.Property("placeholder")
	assert.True(t, ok)
	assert.Equal(t, "x", v)
	v, _ = p2.Property("placeholder")
	assert.Equal(t, "y", v)
	_, ok = base.Property("placeholder")
	assert.False(t, ok)
}

func TestNodeClone(t *testing.T) {
	n := NewNode(1, CheckBox).SetName("Check").SetChildren(5, 6).
		SetProperty("k", "v").SetToggled(Mixed).SetFocusable(true)
	c := n.Clone()
	assert.True(t, n.Equal(c))
	c.Children[0] = 9
	c.Properties["k"] = "w"
	assert.Equal(t, NodeID(5), n.Children[0])
	assert.Equal(t, "v", n.Properties["k"])

	e := NewNode(3, Label).Clone()
	assert.Nil(t, e.Children)
	assert.Nil(t, e.Properties)
}

func TestNodeEqual(t *testing.T) {
	a := NewNode(1, Group)
	b := a.SetChildren()
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(a.SetName("x")))
	assert.False(t, a.Equal(a.SetChildren(2)))
	assert.False(t, a.Equal(a.SetDisabled(true)))
}

func TestNodeString(t *testing.T) {
	n := NewNode(2, Button).SetName("Button 1").SetFocusable(true)
	assert.Equal(t, `#2 Button "Button 1" focusable`, n.String())
	assert.Equal(t, `#3 CheckBox toggled`, NewNode(3, CheckBox).SetToggled(Toggled).String())
}

func TestNodeJSON(t *testing.T) {
	n := NewNode(1, Window).SetName("Hello").SetChildren(2, 3)
	b, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"role":"Window","name":"Hello","children":[2,3]}`, string(b))

	var d Node
	require.NoError(t, json.Unmarshal(b, &d))
	assert.True(t, n.Equal(d))

	assert.Error(t, json.Unmarshal([]byte(`{"id":1,"role":"Spaceship"}`), &d))
}

func TestRoles(t *testing.T) {
	assert.Equal(t, "MenuItem", MenuItem.String())
	assert.Equal(t, "99", Roles(99).String())
	var r Roles
	require.NoError(t, r.SetString("Dialog"))
	assert.Equal(t, Dialog, r)
	assert.Len(t, r.Values(), int(RolesN))
	assert.Equal(t, "UTF16", UTF16.String())
}
