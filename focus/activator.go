// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package focus

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cogentcore.org/access/access"
)

// Activator builds the node that replaces an element when
// it is activated, reflecting its activated state.
type Activator interface {
	Activate(n access.Node) access.Node
}

// ActivatorFunc is a function that implements [Activator].
type ActivatorFunc func(n access.Node) access.Node

func (f ActivatorFunc) Activate(n access.Node) access.Node {
	return f(n)
}

// RenameActivator is the default [Activator], which renames the
// element to say that it was pressed, such that "Button 1"
// becomes "You pressed button 1".
var RenameActivator = ActivatorFunc(func(n access.Node) access.Node {
	return n.SetName(PressedName(n.Name))
})

// PressedName returns the name of a pressed element with the given
// name, with its first word lower-cased.
func PressedName(name string) string {
	if name == "" {
		return "You pressed it"
	}
	first, rest, _ := strings.Cut(name, " ")
	if rest != "" {
		rest = " " + rest
	}
	return "You pressed " + cases.Lower(language.English).String(first) + rest
}
