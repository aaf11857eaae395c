// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package access

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jinzhu/copier"

	"cogentcore.org/access/base/errors"
)

// Node is the semantic description of one interface element at one
// point in time. Nodes are values: use [NewNode] and the Set methods,
// which return modified copies, to build them, and publish a whole new
// Node in a [TreeUpdate] whenever any of its fields change.
type Node struct {

	// ID is the identity of the element, shared by all versions of its Node.
	ID NodeID `json:"id" yaml:"id"`

	// Role is the kind of element.
	Role Roles `json:"role" yaml:"role"`

	// Name is the accessible name of the element, read by screen readers.
	// An empty name means that the element has no name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Children are the ids of the child elements in semantic traversal
	// order, which is not necessarily the visual stacking order. Each of
	// them must resolve to a node in the same tree once the update that
	// introduced it has been applied.
	Children []NodeID `json:"children,omitempty" yaml:"children,omitempty,flow"`

	// Focusable is whether the element can receive keyboard focus.
	Focusable bool `json:"focusable,omitempty" yaml:"focusable,omitempty"`

	// Value is the current value of value-bearing roles such as [TextInput].
	Value string `json:"value,omitempty" yaml:"value,omitempty"`

	// Description is a longer description, read after the name.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Disabled elements are shown but can not be interacted with.
	Disabled bool `json:"disabled,omitempty" yaml:"disabled,omitempty"`

	// Toggled is the checked state of [CheckBox] and similar roles.
	Toggled Toggles `json:"toggled,omitempty" yaml:"toggled,omitempty"`

	// Properties are additional role-specific attributes that
	// have no typed field.
	Properties map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// NewNode returns a new [Node] with the given id and role,
// and all other fields at their defaults.
func NewNode(id NodeID, role Roles) Node {
	return Node{ID: id, Role: role}
}

// SetName returns a copy of the node with the given name.
func (n Node) SetName(name string) Node {
	n.Name = name
	return n
}

// SetChildren returns a copy of the node with the given children.
func (n Node) SetChildren(children ...NodeID) Node {
	n.Children = slices.Clone(children)
	return n
}

// AddChildren returns a copy of the node with the given children
// added after its existing ones.
func (n Node) AddChildren(children ...NodeID) Node {
	n.Children = slices.Concat(n.Children, children)
	return n
}

// SetFocusable returns a copy of the node with the given focusability.
func (n Node) SetFocusable(focusable bool) Node {
	n.Focusable = focusable
	return n
}

// SetValue returns a copy of the node with the given value.
func (n Node) SetValue(value string) Node {
	n.Value = value
	return n
}

// SetDescription returns a copy of the node with the given description.
func (n Node) SetDescription(desc string) Node {
	n.Description = desc
	return n
}

// SetDisabled returns a copy of the node with the given disabled state.
func (n Node) SetDisabled(disabled bool) Node {
	n.Disabled = disabled
	return n
}

// SetToggled returns a copy of the node with the given toggled state.
func (n Node) SetToggled(toggled Toggles) Node {
	n.Toggled = toggled
	return n
}

// SetProperty returns a copy of the node with the given property set.
func (n Node) SetProperty(key, value string) Node {
	n.Properties = maps.Clone(n.Properties)
	if n.Properties == nil {
		n.Properties = map[string]string{}
	}
	n.Properties[key] = value
	return n
}

// Property returns the value of the given property and whether it is set.
func (n Node) Property(key string) (string, bool) {
	v, ok := n.Properties[key]
	return v, ok
}

// HasName returns whether the node has a name.
func (n Node) HasName() bool {
	return n.Name != ""
}

// Clone returns a deep copy of the node that shares no
// memory with it.
func (n Node) Clone() Node {
	var c Node
	errors.Log(copier.CopyWithOption(&c, &n, copier.Option{DeepCopy: true}))
	if len(c.Children) == 0 {
		c.Children = nil
	}
	if len(c.Properties) == 0 {
		c.Properties = nil
	}
	return c
}

// Equal returns whether the two nodes have the same value.
// Nil and empty children and properties are equal.
func (n Node) Equal(o Node) bool {
	return n.ID == o.ID && n.Role == o.Role && n.Name == o.Name &&
		n.Focusable == o.Focusable && n.Value == o.Value &&
		n.Description == o.Description && n.Disabled == o.Disabled &&
		n.Toggled == o.Toggled && slices.Equal(n.Children, o.Children) &&
		maps.Equal(n.Properties, o.Properties)
}

// String returns a short description of the node, such as
// `#2 Button "Button 1" focusable`.
func (n Node) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v %v", n.ID, n.Role)
	if n.HasName() {
		fmt.Fprintf(&b, " %q", n.Name)
	}
	if n.Value != "" {
		fmt.Fprintf(&b, " value=%q", n.Value)
	}
	if n.Focusable {
		b.WriteString(" focusable")
	}
	if n.Disabled {
		b.WriteString(" disabled")
	}
	if n.Toggled != NotToggled {
		b.WriteString(" " + strings.ToLower(n.Toggled.String()))
	}
	return b.String()
}
