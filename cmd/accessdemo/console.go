// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/muesli/termenv"

	"cogentcore.org/access/base/errors"
	"cogentcore.org/access/events"
	"cogentcore.org/access/events/key"
	"cogentcore.org/access/window"
)

// errQuit is returned by [console.Exec] for the quit command.
var errQuit = errors.New("quit")

const consoleHelp = `commands:
  activate          the window gains activation
  deactivate        the window loses activation
  key <chord>...    press the given key chords, such as Tab or "Shift+Tab"
  attach            attach an accessibility consumer
  detach            detach the last attached consumer
  tree              print the accessibility tree
  yaml              print the accessibility tree as YAML
  quit              close the window
`

// console sends the events typed on standard input to a window.
type console struct {
	w   *window.Window
	out *termenv.Output

	// detaches are the detach functions of the attached consumers.
	detaches []func()
}

func newConsole(w *window.Window, out io.Writer) *console {
	return &console{w: w, out: termenv.NewOutput(out)}
}

// Run executes the lines read from the given reader until it ends or
// the quit command, and then closes the window.
func (c *console) Run(r io.Reader) {
	defer c.w.Send(events.NewWindow(events.Close))
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		err := c.Exec(sc.Text())
		if errors.Is(err, errQuit) {
			return
		}
		if err != nil {
			fmt.Fprintln(c.out, c.out.String(err.Error()).Foreground(termenv.ANSIRed))
		}
	}
}

// Exec executes the given command line.
func (c *console) Exec(line string) error {
	args, err := shellwords.Parse(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	switch cmd, args := args[0], args[1:]; cmd {
	case "activate", "deactivate":
		c.w.Send(events.NewWindowActivation(cmd == "activate"))
	case "key":
		if len(args) == 0 {
			return errors.New("key: missing chord")
		}
		for _, a := range args {
			code, mods, err := key.Chord(a).Decode()
			if err != nil {
				return fmt.Errorf("key: %w", err)
			}
			c.w.Send(events.NewKey(code, mods))
		}
	case "attach":
		c.detaches = append(c.detaches, c.w.Attach())
	case "detach":
		if len(c.detaches) == 0 {
			return errors.New("detach: no consumer is attached")
		}
		last := len(c.detaches) - 1
		c.detaches[last]()
		c.detaches = c.detaches[:last]
	case "tree":
		c.printTree()
	case "yaml":
		return c.w.Store().Tree().WriteYAML(c.out)
	case "help":
		fmt.Fprint(c.out, consoleHelp)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q; type help for the commands", cmd)
	}
	return nil
}

// printTree prints the outline of the tree, with the focused node in bold.
func (c *console) printTree() {
	snap := c.w.Store().Tree()
	fmt.Fprintf(c.out, "%s v%d\n", snap.Tree.ID, snap.Version)
	for line := range strings.Lines(snap.String()) {
		if strings.HasPrefix(strings.TrimLeft(line, " "), "* ") {
			fmt.Fprint(c.out, c.out.String(line).Bold())
			continue
		}
		fmt.Fprint(c.out, line)
	}
}
