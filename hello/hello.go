// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hello is a sample application with a window and two
// buttons, which publishes its accessibility tree through a
// [window.Window].
package hello

import (
	"cogentcore.org/access/access"
	"cogentcore.org/access/focus"
	"cogentcore.org/access/window"
)

// The node ids of the elements of the app.
const (
	WindowID access.NodeID = iota + 1
	Button1ID
	Button2ID

	// InitialFocus is the element that has the focus
	// when the window is first activated.
	InitialFocus = Button1ID
)

// Title is the name of the window.
const Title = "Hello world"

// App is the state of the sample application, which provides
// the initial tree of its window and the activated buttons.
type App struct {

	// TreeID is the id of the accessibility tree.
	TreeID access.TreeID

	// Encoding is the string encoding of the tree.
	Encoding access.StringEncodings

	// pressed records which buttons have been pressed.
	pressed map[access.NodeID]bool
}

// NewApp returns a new [App] with the given tree id.
func NewApp(id access.TreeID) *App {
	return &App{TreeID: id, Encoding: access.UTF8, pressed: map[access.NodeID]bool{}}
}

// ButtonName returns the current name of the button with the given id.
func (a *App) ButtonName(id access.NodeID) string {
	name := "Button 1"
	if id == Button2ID {
		name = "Button 2"
	}
	if a.pressed[id] {
		return focus.PressedName(name)
	}
	return name
}

// Pressed returns whether the button with the given id has been pressed.
func (a *App) Pressed(id access.NodeID) bool {
	return a.pressed[id]
}

func (a *App) button(id access.NodeID) access.Node {
	return access.NewNode(id, access.Button).SetName(a.ButtonName(id)).SetFocusable(true)
}

// InitialTree implements [window.InitialTreeProvider].
func (a *App) InitialTree(id window.ID, f access.Focus) access.TreeUpdate {
	tr := access.NewTree(a.TreeID, WindowID, a.Encoding)
	return access.TreeUpdate{
		Nodes: []access.Node{
			access.NewNode(WindowID, access.Window).SetName(Title).SetChildren(Button1ID, Button2ID),
			a.button(Button1ID),
			a.button(Button2ID),
		},
		Tree:  &tr,
		Focus: f,
	}
}

// Activate implements [focus.Activator]. It records the
// button as pressed and returns its renamed node.
func (a *App) Activate(n access.Node) access.Node {
	if n.ID != Button1ID && n.ID != Button2ID {
		return n
	}
	a.pressed[n.ID] = true
	return n.SetName(a.ButtonName(n.ID))
}

// NewWindow returns a new [window.Window] with the given id
// showing the app, with the focus initially on [InitialFocus].
func (a *App) NewWindow(id window.ID) (*window.Window, error) {
	ctrl := focus.NewController(InitialFocus).SetActivator(a)
	return window.New(id, a, ctrl)
}
